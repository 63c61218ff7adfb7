package immediate

import (
	"encoding/binary"
	"hash/fnv"
)

// ID identifies a window or widget across frames.
type ID uint64

// hashID derives a child ID from a parent and a label. The same pair always
// gives the same ID, so state survives between frames.
func hashID(parent ID, label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetID returns the ID of label within the current ID scope.
func (ctx *Context) GetID(label string) ID {
	return hashID(ctx.CurrentID(), label)
}

// PushID opens a nested ID scope, for widgets that share a label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at the top level.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
