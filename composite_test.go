package parallax

import (
	"errors"
	"testing"
)

// orderProbe records the order in which it is rendered and receives keys.
type orderProbe struct {
	id   int
	log  *[]int
	keys []Key
	err  error
}

func (p *orderProbe) Render(Surface) error {
	*p.log = append(*p.log, p.id)
	return p.err
}

func (p *orderProbe) HandleKeydown(k Key) error {
	p.keys = append(p.keys, k)
	return p.err
}

func TestCompositeEmpty(t *testing.T) {
	c := NewCompositeSprite()
	var s recordingSurface
	if err := c.Render(&s); err != nil {
		t.Fatal(err)
	}
	if len(s.draws) != 0 || len(s.fills) != 0 {
		t.Errorf("draws=%d fills=%d, want none", len(s.draws), len(s.fills))
	}
	if err := c.HandleKeydown(KeySpace); err != nil {
		t.Error(err)
	}
}

func TestCompositeRenderOrder(t *testing.T) {
	var log []int
	c := NewCompositeSprite()
	for i := 0; i < 5; i++ {
		c.Add(&orderProbe{id: i, log: &log})
	}
	if c.Len() != 5 {
		t.Fatalf("Len = %d", c.Len())
	}
	var s recordingSurface
	if err := c.Render(&s); err != nil {
		t.Fatal(err)
	}
	if len(log) != 5 {
		t.Fatalf("renders = %d, want 5", len(log))
	}
	for i, id := range log {
		if id != i {
			t.Errorf("render %d was child %d", i, id)
		}
	}
}

func TestCompositeDrawOrder(t *testing.T) {
	texA, texB := newStub("a"), newStub("b")
	a := NewSprite(Zero(0, 0), mustAnimation(t, 1, stripFrames(t, texA, 0, 1)...), 1)
	b := NewSprite(Zero(0, 0), mustAnimation(t, 1, stripFrames(t, texB, 0, 1)...), 1)
	c := NewCompositeSprite(a, b)

	var s recordingSurface
	if err := c.Render(&s); err != nil {
		t.Fatal(err)
	}
	if len(s.draws) != 2 || s.draws[0].tex != texA || s.draws[1].tex != texB {
		t.Errorf("draw order wrong: %+v", s.draws)
	}
}

func TestCompositeForwardsKeys(t *testing.T) {
	var log []int
	p1 := &orderProbe{id: 1, log: &log}
	p2 := &orderProbe{id: 2, log: &log}
	c := NewCompositeSprite(p1, p2)
	if err := c.HandleKeydown(KeySpace); err != nil {
		t.Fatal(err)
	}
	if len(p1.keys) != 1 || len(p2.keys) != 1 || p2.keys[0] != KeySpace {
		t.Errorf("keys: %v %v", p1.keys, p2.keys)
	}
}

func TestCompositeRendersAllDespiteErrors(t *testing.T) {
	var log []int
	boom := errors.New("boom")
	c := NewCompositeSprite(
		&orderProbe{id: 0, log: &log, err: boom},
		&orderProbe{id: 1, log: &log},
	)
	var s recordingSurface
	err := c.Render(&s)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if len(log) != 2 {
		t.Errorf("renders = %d, want 2", len(log))
	}
}

func TestNestedComposite(t *testing.T) {
	var log []int
	inner := NewCompositeSprite(&orderProbe{id: 1, log: &log}, &orderProbe{id: 2, log: &log})
	outer := NewCompositeSprite(&orderProbe{id: 0, log: &log}, inner, &orderProbe{id: 3, log: &log})
	var s recordingSurface
	if err := outer.Render(&s); err != nil {
		t.Fatal(err)
	}
	for i, id := range log {
		if id != i {
			t.Fatalf("order = %v", log)
		}
	}
}
