package ecs

import "math/bits"

type Bitmask []uint64

func (b Bitmask) Set(bit ComponentID) Bitmask {
	word, pos := bit/64, bit%64
	for len(b) <= int(word) {
		b = append(b, 0)
	}
	b[word] |= (1 << pos)
	return b
}

// Matches reports whether every bit of required is set in b.
func (b Bitmask) Matches(required Bitmask) bool {
	for i := range required {
		if required[i] == 0 {
			continue
		}
		if i >= len(b) || (b[i]&required[i]) != required[i] {
			return false
		}
	}
	return true
}

func (b Bitmask) ForEachSet(fn func(id ComponentID)) {
	for wordIdx, word := range b {
		for word != 0 {
			bitPos := bits.TrailingZeros64(word)
			fn(ComponentID(wordIdx*64 + bitPos))
			word &= ^(1 << bitPos)
		}
	}
}

func (b Bitmask) Clear(bit ComponentID) Bitmask {
	word, pos := bit/64, bit%64
	if len(b) <= int(word) {
		return b
	}
	b[word] &= ^(1 << pos)
	return b
}
