package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/showrank/internal/quiz"
)

const quizSchemaURL = "schema://showrank/quiz.json"

// quizSchema constrains the shape of a configured quiz. Cross-field rules,
// such as every points row having one value per item, stay in quiz.New.
var quizSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["items"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "maxLength": 40},
		"items": {
			"type": "array",
			"minItems": 2,
			"maxItems": %d,
			"items": {
				"type": "object",
				"required": ["name", "points"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "pattern": "\\S"},
					"points": {
						"type": "array",
						"minItems": 1,
						"items": {"type": "integer", "minimum": 0}
					}
				}
			}
		}
	}
}`, quiz.MaxItems)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledQuizSchema compiles quizSchema once and caches the result.
func compiledQuizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(quizSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add quiz schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(quizSchemaURL)
	})
	return compiledSchema, compileErr
}

type quizDoc struct {
	Title string    `json:"title,omitempty"`
	Items []itemDoc `json:"items"`
}

type itemDoc struct {
	Name   string `json:"name"`
	Points []int  `json:"points"`
}

// validateQuizShape checks qc against quizSchema.
func validateQuizShape(qc QuizConfig) error {
	sch, err := compiledQuizSchema()
	if err != nil {
		return err
	}

	doc := quizDoc{Title: qc.Title, Items: make([]itemDoc, 0, len(qc.Items))}
	for _, it := range qc.Items {
		doc.Items = append(doc.Items, itemDoc{Name: it.Name, Points: it.Points})
	}

	// The validator wants plain JSON values, so round-trip through bytes.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse quiz: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrQuizShape, err)
	}
	return nil
}
