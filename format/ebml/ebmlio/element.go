package ebmlio

// Element is one EBML element. Master elements carry Children and absent
// Data; leaf elements carry Data and no Children.
type Element struct {
	ElementHeader

	Master   bool
	Offset   int64 // Stream offset of the header, -1 for elements built in memory
	Data     Data
	Children []*Element
}

// NewMaster builds a master element for writing.
func NewMaster(id uint64, children ...*Element) *Element {
	el := &Element{Master: true, Offset: -1, Children: children}
	el.ID = id
	return el
}

// NewLeaf builds a leaf element for writing.
func NewLeaf(id uint64, b []byte) *Element {
	el := &Element{Offset: -1, Data: NewData(b)}
	el.ID = id
	el.Size = uint64(len(b))
	return el
}

// Append adds children to a master element.
func (el *Element) Append(children ...*Element) *Element {
	el.Children = append(el.Children, children...)
	return el
}

// DataLen returns the payload length implied by the element's contents,
// which for masters is the encoded length of all children.
func (el *Element) DataLen() (uint64, error) {
	if !el.Master {
		return uint64(el.Data.Len()), nil
	}
	var n uint64
	for _, child := range el.Children {
		cn, err := child.Len()
		if err != nil {
			return 0, err
		}
		n += cn
	}
	return n, nil
}

// Len returns the encoded length of the element, header included.
func (el *Element) Len() (uint64, error) {
	size, err := el.DataLen()
	if err != nil {
		return 0, err
	}
	h := ElementHeader{ID: el.ID, Size: size}
	hn, err := h.HeaderLen()
	if err != nil {
		return 0, err
	}
	return uint64(hn) + size, nil
}
