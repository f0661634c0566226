// Package prompt asks the user for configuration values following a schema
// of fields with typed defaults. The default's type decides the prompt kind
// and the conversion applied to the answer.
package prompt

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/oceanbound/marlin/pkg/errors"
)

// Field is one prompted value. Supported default types: string, int,
// float64, bool.
type Field struct {
	Key     string
	Default interface{}
	Help    string
}

// Schema is an ordered list of fields to prompt for.
type Schema []Field

// asker abstracts survey.AskOne so tests can script answers.
type asker func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Ask prompts for every field in order and returns the answers keyed by
// field. An empty answer keeps the default. A terminal interrupt returns
// ErrInterrupted and no answers.
func Ask(schema Schema) (map[string]interface{}, error) {
	return ask(schema, survey.AskOne)
}

func ask(schema Schema, askOne asker) (map[string]interface{}, error) {
	answers := make(map[string]interface{}, len(schema))
	for _, field := range schema {
		value, err := askField(field, askOne)
		if err != nil {
			if err == terminal.InterruptErr {
				return nil, errors.ErrInterrupted
			}
			return nil, err
		}
		answers[field.Key] = value
	}
	return answers, nil
}

func askField(field Field, askOne asker) (interface{}, error) {
	switch def := field.Default.(type) {
	case bool:
		var answer bool
		err := askOne(&survey.Confirm{Message: field.Key, Default: def, Help: field.Help}, &answer)
		return answer, err
	case int:
		var raw string
		err := askOne(&survey.Input{Message: field.Key, Default: fmt.Sprint(def), Help: field.Help},
			&raw, survey.WithValidator(validInt))
		if err != nil {
			return nil, err
		}
		return ConvertAnswer(raw, def)
	case float64:
		var raw string
		err := askOne(&survey.Input{Message: field.Key, Default: fmt.Sprint(def), Help: field.Help},
			&raw, survey.WithValidator(validFloat))
		if err != nil {
			return nil, err
		}
		return ConvertAnswer(raw, def)
	case string:
		var answer string
		err := askOne(&survey.Input{Message: field.Key, Default: def, Help: field.Help}, &answer)
		return answer, err
	default:
		return nil, fmt.Errorf("unsupported default type %T for field %q", field.Default, field.Key)
	}
}
