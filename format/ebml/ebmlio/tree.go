package ebmlio

type frame struct {
	el     *Element
	remain uint64
}

// ReadElement reads the next element and, for masters, all of its
// descendants. n is the total number of bytes consumed, which for a master
// is its header length plus its declared size.
//
// Children must fit inside the unread part of their parent. Nesting deeper
// than MaxDepth fails with ErrTooDeep. On failure nothing is returned.
func (r *Reader) ReadElement() (el *Element, n int, err error) {
	return r.readTree(0, false)
}

// ExpectElement is ReadElement for a caller that knows which element comes
// next; a different ID fails with ErrUnexpectedElementID before its payload
// is read.
func (r *Reader) ExpectElement(id uint64) (el *Element, n int, err error) {
	return r.readTree(id, true)
}

func (r *Reader) readTree(expect uint64, check bool) (*Element, int, error) {
	start := r.off
	h, _, err := r.ReadHeader()
	if err != nil {
		return nil, 0, err
	}
	if check && h.ID != expect {
		return nil, 0, parseErr(r.opts.Registry.Name(h.ID), start, h.ID, ErrUnexpectedElementID)
	}
	root, _, err := r.ReadElementBody(h, start)
	if err != nil {
		return nil, 0, err
	}
	return root, int(r.off - start), nil
}

// ReadElementBody completes an element whose header was read with
// ReadHeader at offset, reading its payload or all of its descendants. n
// counts the payload only.
func (r *Reader) ReadElementBody(h ElementHeader, offset int64) (el *Element, n int, err error) {
	start := r.off
	root, err := r.open(h, offset)
	if err != nil {
		return nil, 0, err
	}
	if !root.Master {
		return root, int(r.off - start), nil
	}
	if root.Size > 0 {
		root.Children = []*Element{}
	}

	stack := []frame{{el: root, remain: root.Size}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.remain == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		off := r.off
		h, hn, err := r.ReadHeader()
		if err != nil {
			return nil, 0, unwind(r, stack, eofErr(err))
		}
		if uint64(hn) > top.remain || h.Size > top.remain-uint64(hn) {
			err = parseErr(r.opts.Registry.Name(h.ID), off, h.ID, ErrElementOverflow)
			return nil, 0, unwind(r, stack, err)
		}
		top.remain -= uint64(hn) + h.Size

		child, err := r.open(h, off)
		if err != nil {
			return nil, 0, unwind(r, stack, err)
		}
		top.el.Children = append(top.el.Children, child)

		if child.Master && child.Size > 0 {
			if len(stack) >= r.opts.MaxDepth {
				err = parseErr(r.opts.Registry.Name(h.ID), off, h.ID, ErrTooDeep)
				return nil, 0, unwind(r, stack, err)
			}
			child.Children = []*Element{}
			stack = append(stack, frame{el: child, remain: child.Size})
		}
	}
	return root, int(r.off - start), nil
}

// unwind wraps err with the chain of open masters, outermost first.
func unwind(r *Reader, stack []frame, err error) error {
	for i := len(stack) - 1; i >= 0; i-- {
		el := stack[i].el
		err = parseErr(r.opts.Registry.Name(el.ID), el.Offset, el.ID, err)
	}
	return err
}
