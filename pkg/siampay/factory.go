package siampay

// kindConstructors maps the object discriminator of a decoded payload to
// the concrete kind to instantiate.
var kindConstructors = map[string]func() Resource{
	"account":     func() Resource { return &Account{} },
	"balance":     func() Resource { return &Balance{} },
	"token":       func() Resource { return &Token{} },
	"card":        func() Resource { return &Card{} },
	"charge":      func() Resource { return &Charge{} },
	"customer":    func() Resource { return &Customer{} },
	"refund":      func() Resource { return &Refund{} },
	"transfer":    func() Resource { return &Transfer{} },
	"transaction": func() Resource { return &Transaction{} },
	"list":        func() Resource { return &Collection{} },
}

// Materialize converts a decoded JSON value into its local representation.
//
// Slices are converted element-wise into a new slice, preserving order.
// Maps are dispatched on their object discriminator to a concrete kind;
// an unrecognized discriminator falls back to the generic Record so that
// kinds introduced by the API after this release still decode. Any other
// value passes through unchanged.
func Materialize(value any) any {
	switch typed := value.(type) {
	case []any:
		converted := make([]any, len(typed))
		for i, element := range typed {
			converted[i] = Materialize(element)
		}

		return converted
	case map[string]any:
		kind, _ := typed["object"].(string)

		resource := newResource(kind)
		resource.Load(typed)

		return resource
	default:
		return value
	}
}

func newResource(kind string) Resource {
	if construct, ok := kindConstructors[kind]; ok {
		return construct()
	}

	return &Record{}
}
