package ports

// OutputVerifier checks that generated outputs are present on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type OutputVerifier interface {
	// VerifyOutputs reports whether every output exists. Relative outputs are resolved against root.
	VerifyOutputs(root string, outputs []string) (bool, error)
}
