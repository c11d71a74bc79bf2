package parallax

import "errors"

// CompositeSprite renders an ordered list of entities as one. It has no
// motion or animation of its own and does not observe its children's cycle
// signals.
type CompositeSprite struct {
	children []Entity
}

// NewCompositeSprite returns a composite over children, kept in the given
// order.
func NewCompositeSprite(children ...Entity) *CompositeSprite {
	return &CompositeSprite{children: children}
}

// Add appends child to the end of the render order.
func (c *CompositeSprite) Add(child Entity) {
	c.children = append(c.children, child)
}

// Len returns the number of children.
func (c *CompositeSprite) Len() int { return len(c.children) }

// Children returns the children in render order. The returned slice MUST NOT
// be mutated.
func (c *CompositeSprite) Children() []Entity { return c.children }

// Render renders every child in order. Every child is rendered even if an
// earlier one fails; the errors are joined.
func (c *CompositeSprite) Render(dst Surface) error {
	var errs []error
	for _, child := range c.children {
		if err := child.Render(dst); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandleKeydown forwards key to every child in order.
func (c *CompositeSprite) HandleKeydown(key Key) error {
	var errs []error
	for _, child := range c.children {
		if err := child.HandleKeydown(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
