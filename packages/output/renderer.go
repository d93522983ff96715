package output

import (
	"github.com/abdul-hamid-achik/rest/packages/http"
	"github.com/fatih/color"
)

type Format int

const (
	// FormatDefault echoes the response as a structured JSON object
	FormatDefault Format = iota
	// FormatText prints an HTTP/1.1 style message
	FormatText
)

func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "json"
}

// ParseFormat maps a typed answer to a Format. Only "text" selects the text
// format; anything else, including "", is the default.
func ParseFormat(answer string) Format {
	if answer == "text" {
		return FormatText
	}
	return FormatDefault
}

// FormatQuestion is asked once a response is available
const FormatQuestion = `Choose response format ["json", "text"]: `

// Prompter asks a single question and returns the trimmed answer.
type Prompter interface {
	Prompt(question string) (string, error)
}

type Renderer struct {
	console  *Console
	prompter Prompter
}

func NewRenderer(console *Console, prompter Prompter) *Renderer {
	return &Renderer{
		console:  console,
		prompter: prompter,
	}
}

// Render asks for the format and prints resp once.
func (r *Renderer) Render(resp *http.Response) error {
	green := color.New(color.FgHiGreen).SprintFunc()

	answer, err := r.prompter.Prompt(green(FormatQuestion))
	if err != nil {
		return err
	}

	out, err := RenderAs(resp, ParseFormat(answer))
	if err != nil {
		return err
	}
	r.console.Success(out)
	return nil
}

// RenderAs renders resp in format f. The output depends only on its inputs
// and the global color setting.
func RenderAs(resp *http.Response, f Format) (string, error) {
	switch f {
	case FormatText:
		return RenderText(resp), nil
	default:
		return RenderJSON(resp, !color.NoColor)
	}
}
