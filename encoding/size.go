package encoding

type structSize []int

func (ss structSize) Size() (total int) {
	for _, size := range ss {
		total += size
	}
	return
}
