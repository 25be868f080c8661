package siampay

// Collection represents a "list" response: a record whose data field holds
// an ordered sequence of raw elements. Elements are converted through the
// object factory on every access, so each At, All, or Retrieve call
// produces fresh records.
type Collection struct {
	Record
}

func (c *Collection) data() []any {
	items, _ := c.attributes["data"].([]any)

	return items
}

// Len returns the number of elements in the collection.
func (c *Collection) Len() int {
	return len(c.data())
}

// At returns the materialized element at index i. It panics when i is out
// of range, matching slice indexing.
func (c *Collection) At(i int) any {
	return Materialize(c.data()[i])
}

// All returns every element materialized, in input order.
func (c *Collection) All() []any {
	items := c.data()

	all := make([]any, len(items))
	for i, item := range items {
		all[i] = Materialize(item)
	}

	return all
}

// Retrieve returns the element whose id field equals id, or nil when no
// element matches.
func (c *Collection) Retrieve(id string) Resource {
	for _, item := range c.data() {
		element, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if element["id"] == id {
			resource, _ := Materialize(element).(Resource)

			return resource
		}
	}

	return nil
}
