// Package forms composes labeled input elements with per-field validation.
//
// It is a direct mapping of configuration to behavior and intentionally stays
// that way: no widget framework, no state between requests, no rendering
// beyond plain labeled inputs.
package forms

import (
	"fmt"
	"html/template"
	"strings"
)

// Form aggregates elements in insertion order.
type Form struct {
	Action   string
	Method   string
	elements []*Element
}

func New(action, method string) *Form {
	if method == "" {
		method = "post"
	}
	return &Form{Action: action, Method: method}
}

// Add appends an element; insertion order is rendering order.
func (f *Form) Add(elements ...*Element) *Form {
	f.elements = append(f.elements, elements...)
	return f
}

func (f *Form) Elements() []*Element {
	return f.elements
}

// Validate runs every element's validator chain against the submitted values
// and reports the first failure per field, keyed by element name. An empty
// map means the submission is valid.
func (f *Form) Validate(values map[string]string) map[string]error {
	errs := make(map[string]error)
	for _, e := range f.elements {
		v := values[e.Name]
		for _, validator := range e.validators {
			if err := validator.Validate(v); err != nil {
				errs[e.Name] = fmt.Errorf("%s: %w", e.Name, err)
				break
			}
		}
	}
	return errs
}

var formTemplate = template.Must(template.New("form").Parse(
	`<form action="{{.Action}}" method="{{.Method}}">
{{- range .Elements}}{{$e := .}}
  <label for="{{.Name}}">{{.Label}}</label>
{{- if eq .Kind "textarea"}}
  <textarea id="{{.Name}}" name="{{.Name}}">{{.Value}}</textarea>
{{- else if eq .Kind "select"}}
  <select id="{{.Name}}" name="{{.Name}}">
{{- range .Options}}
    <option value="{{.}}"{{if eq . $e.Value}} selected{{end}}>{{.}}</option>
{{- end}}
  </select>
{{- else}}
  <input type="{{.Kind}}" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}">
{{- end}}
{{- end}}
</form>
`))

// HTML renders the form as labeled inputs. All values pass through
// html/template autoescaping.
func (f *Form) HTML() (string, error) {
	var sb strings.Builder
	if err := formTemplate.Execute(&sb, f); err != nil {
		return "", fmt.Errorf("forms: render failed: %w", err)
	}
	return sb.String(), nil
}
