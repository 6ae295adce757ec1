package cpu

const (
	MEMORY_SIZE = 0x10000 // Default memory capacity, in words.
)

// Memory is the bounds checked address space of a single machine.
// Cells past the end of Data read as zero, and writes grow Data on demand
// up to Capacity.
type Memory struct {
	Capacity int
	Data     []int64
}

// NewMemory creates a memory holding a private copy of the program.
func NewMemory(prog Program, capacity int) (mem *Memory) {
	if capacity == 0 {
		capacity = MEMORY_SIZE
	}

	mem = &Memory{
		Capacity: max(capacity, len(prog)),
		Data:     prog.Clone(),
	}

	return
}

func (mem *Memory) check(addr int64) (err error) {
	if addr < 0 || addr >= int64(mem.Capacity) {
		err = ErrAddressRange(addr)
	}
	return
}

// Read the word at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	if addr < int64(len(mem.Data)) {
		value = mem.Data[addr]
	}

	return
}

// Write the word at addr.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	if addr >= int64(len(mem.Data)) {
		mem.Data = append(mem.Data, make([]int64, int(addr)+1-len(mem.Data))...)
	}
	mem.Data[addr] = value

	return
}

// Len is the number of words that have been loaded or written.
func (mem *Memory) Len() int {
	return len(mem.Data)
}
