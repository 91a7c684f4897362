package directive

import "github.com/heartmarshall/coursepilot-backend/internal/domain"

// Elements builds the UI widgets described by BUTTON and FILE_UPLOAD
// occurrences. Repeated ids fold the same way actions do.
func Elements(dirs []Directive) []domain.UIElement {
	type key struct {
		kind Kind
		id   string
	}
	var (
		order []key
		best  = make(map[key]Params)
	)
	for _, d := range dirs {
		if d.Kind() != KindButton && d.Kind() != KindFileUpload {
			continue
		}
		k := key{kind: d.Kind(), id: d.Name()}
		cur, seen := best[k]
		if !seen {
			order = append(order, k)
			best[k] = d.Params()
			continue
		}
		if supersedes(d.Params(), cur) {
			best[k] = d.Params()
		}
	}

	out := make([]domain.UIElement, 0, len(order))
	for _, k := range order {
		out = append(out, toElement(k.kind, k.id, best[k].Map()))
	}
	return out
}

func toElement(kind Kind, id string, params map[string]string) domain.UIElement {
	el := domain.UIElement{ID: id, Action: params["action"]}
	delete(params, "action")

	switch kind {
	case KindButton:
		el.Type = domain.UIElementButton
		el.Label = firstNonEmpty(params["label"], params["buttonLabel"])
		delete(params, "label")
		delete(params, "buttonLabel")
	case KindFileUpload:
		el.Type = domain.UIElementFileUpload
		el.Message = firstNonEmpty(params["message"], params["label"])
		el.Label = params["buttonLabel"]
		delete(params, "message")
		delete(params, "label")
		delete(params, "buttonLabel")
	}

	if len(params) > 0 {
		el.Params = params
	}
	return el
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
