package cpu

const (
	STACK_LIMIT = 20 // Default maximum stack depth
)

// Stack is the bounded call stack of return positions.
type Stack struct {
	Limit int // Maximum depth; STACK_LIMIT if zero.
	Data  []int32
}

func (s *Stack) limit() int {
	if s.Limit <= 0 {
		return STACK_LIMIT
	}
	return s.Limit
}

// Push a value. Returns false, leaving the stack unchanged, if the stack is full.
func (s *Stack) Push(value int32) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, value)
	return true
}

func (s *Stack) Pop() (value int32, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.limit()
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value int32, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
