package ir

// Block is a sequence of instructions inside a function, kept as a doubly
// linked list so records can be repositioned in O(1).
type Block struct {
	Name string

	fn         *Function
	head, tail *Instr
}

// Parent returns the containing function.
func (b *Block) Parent() *Function { return b.fn }

// First returns the first instruction, or nil for an empty block.
func (b *Block) First() *Instr { return b.head }

// Last returns the last instruction, or nil for an empty block.
func (b *Block) Last() *Instr { return b.tail }

// Append links a detached instruction at the end of the block.
func (b *Block) Append(in *Instr) *Instr {
	in.blk = b
	in.prev = b.tail
	in.next = nil
	if b.tail != nil {
		b.tail.next = in
	} else {
		b.head = in
	}
	b.tail = in
	return in
}

// Instrs returns a snapshot of the block's instructions in program order.
// Safe to iterate while inserting into or removing from the block.
func (b *Block) Instrs() []*Instr {
	var out []*Instr
	for in := b.head; in != nil; in = in.next {
		out = append(out, in)
	}
	return out
}

// Len returns the number of instructions in the block.
func (b *Block) Len() int {
	n := 0
	for in := b.head; in != nil; in = in.next {
		n++
	}
	return n
}
