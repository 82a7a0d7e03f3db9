package application

type GenerateCommand struct {
	Service string
	Counter uint64
	NoCopy  bool
}

type GenerateResult struct {
	Service  string
	Password string
	Copied   bool
	// CopyErr explains why the clipboard could not be used; it never fails
	// the generation itself.
	CopyErr error
}
