package forms

// Kind selects the rendered input element.
type Kind string

const (
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindTextarea Kind = "textarea"
	KindCheckbox Kind = "checkbox"
	KindSelect   Kind = "select"
)

// Element is one labeled input with its validator chain.
type Element struct {
	Kind    Kind
	Name    string
	Label   string
	Value   string
	Options []string

	validators []Validator
}

func NewElement(kind Kind, name, label string) *Element {
	return &Element{Kind: kind, Name: name, Label: label}
}

func Text(name, label string) *Element {
	return NewElement(KindText, name, label)
}

func Password(name, label string) *Element {
	return NewElement(KindPassword, name, label)
}

func Textarea(name, label string) *Element {
	return NewElement(KindTextarea, name, label)
}

func Checkbox(name, label string) *Element {
	return NewElement(KindCheckbox, name, label)
}

func Select(name, label string, options ...string) *Element {
	e := NewElement(KindSelect, name, label)
	e.Options = options
	return e
}

// Default sets the pre-filled value.
func (e *Element) Default(value string) *Element {
	e.Value = value
	return e
}

// With appends validators to the chain; they run in order and the first
// failure wins.
func (e *Element) With(validators ...Validator) *Element {
	e.validators = append(e.validators, validators...)
	return e
}
