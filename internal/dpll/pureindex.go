package dpll

// pureIndex is a packed two-bit-per-variable usage table: for each variable
// it records whether the positive literal, the negative literal, or both
// have been seen. A variable is pure when exactly one bit is set; pureCount
// caches how many variables currently qualify so findPureLiteral can stop
// scanning as soon as none remain.
//
// The index is rebuilt from scratch before every pure-literal removal pass
// (see CNF.findPureLiteral) rather than maintained incrementally across
// propagations; at the scale this package targets that rebuild is cheap and
// it sidesteps having to thread index updates through every mutation.
type pureIndex struct {
	usage     []byte
	pureCount int
}

func slot(v int) (index int, shift uint) {
	index = (v - 1) / 4
	shift = uint((v-1)%4) * 2
	return index, shift
}

// reset clears the index and resizes it to address variables 1..v.
func (p *pureIndex) reset(v int) {
	size := (v + 3) / 4
	if cap(p.usage) >= size {
		p.usage = p.usage[:size]
		for i := range p.usage {
			p.usage[i] = 0
		}
	} else {
		p.usage = make([]byte, size)
	}
	p.pureCount = 0
}

// stateOf returns whether the positive and negative literal of variable v
// have been seen.
func (p *pureIndex) stateOf(v int) (posSeen, negSeen bool) {
	idx, shift := slot(v)
	b := p.usage[idx]
	posSeen = b&(1<<shift) != 0
	negSeen = b&(1<<(shift+1)) != 0
	return
}

// setUsage records that literal l has been seen, adjusting pureCount by
// {-1, 0, +1} depending on whether the variable's purity changed.
func (p *pureIndex) setUsage(l Literal) {
	v := l.Var()
	idx, shift := slot(v)
	pos, neg := p.stateOf(v)
	wasPure := pos != neg

	var bit byte
	if l.IsPositive() {
		if pos {
			return
		}
		bit = 1 << shift
	} else {
		if neg {
			return
		}
		bit = 1 << (shift + 1)
	}
	p.usage[idx] |= bit

	pos, neg = p.stateOf(v)
	isPure := pos != neg
	switch {
	case isPure && !wasPure:
		p.pureCount++
	case !isPure && wasPure:
		p.pureCount--
	}
}

// pure reports whether variable v is currently pure and, if so, whether its
// one observed polarity is negative.
func (p *pureIndex) pure(v int) (pure bool, negative bool) {
	pos, neg := p.stateOf(v)
	pure = pos != neg
	negative = pure && neg
	return
}

// build resets the index for v variables and walks buf once, recording the
// usage of every literal.
func (p *pureIndex) build(buf []Literal, v int) {
	p.reset(v)
	for _, l := range buf {
		if !l.IsEmpty() {
			p.setUsage(l)
		}
	}
}
