package scene

// DrawFlags_TestOnly compiles steps and reports the draw flag of each
// resulting action, exposing how steps were folded.
func DrawFlags_TestOnly(steps []Step) ([]bool, error) {
	actions, err := compile(steps)
	if err != nil {
		return nil, err
	}
	flags := make([]bool, len(actions))
	for i, a := range actions {
		flags[i] = a.draw
	}
	return flags, nil
}
