package component

// Input снимок клавиш за один тик. Jump и Attack это фронты нажатия.
type Input struct {
	Left, Right bool
	Up, Down    bool
	Run         bool
	Jump        bool
	Attack      bool
}

// Moving true, если зажато хотя бы одно направление.
func (in Input) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}
