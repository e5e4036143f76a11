package perceptron

// MakeIterator makes a generic iterator of a flat row major board of m rows and n columns.
// The rows share memory with the board.
func MakeIterator(board []int32, m, n int) (retVal [][]int32) {
	retVal = make([][]int32, m)
	for i := range retVal {
		start := i * n
		retVal[i] = board[start : start+n : start+n]
	}
	return
}
