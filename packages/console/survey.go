package console

import (
	"io"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cockroachdb/errors"
)

// region survey ///////////////////////////////////////////////////////////////////////////////////////////////////////

var actionQuestion = &survey.Select{
	Message: "Choose an action",
	Options: actionNames,
	Default: ActionInsert.String(),
}

var intQuestion = func(message string) *survey.Input {
	return &survey.Input{
		Message: message,
	}
}

// SurveyPrompter is an interactive Prompter for terminals.
type SurveyPrompter struct {
	options []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter. The options are passed to every question.
func NewSurveyPrompter(options ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{
		options: options,
	}
}

// Action lets the user select a menu entry.
func (s *SurveyPrompter) Action() (Action, error) {
	var answer string
	if err := survey.AskOne(actionQuestion, &answer, s.options...); err != nil {
		return ActionInvalid, surveyError(err)
	}

	return ActionFromName(answer), nil
}

// Int asks for an integer. Invalid answers are rejected by the validator and asked again.
func (s *SurveyPrompter) Int(message string) (int, error) {
	var answer string
	if err := survey.AskOne(intQuestion(message), &answer, append(s.options, survey.WithValidator(validateInt))...); err != nil {
		return 0, surveyError(err)
	}

	return strconv.Atoi(answer)
}

func validateInt(val interface{}) error {
	if str, ok := val.(string); ok {
		if _, err := strconv.Atoi(str); err == nil {
			return nil
		}
	}

	return errors.New("Invalid input. Please enter an integer.")
}

func surveyError(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrInputClosed
	}

	return errors.Wrap(err, "failed to ask question")
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
