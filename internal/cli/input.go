package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// openInput returns the file at path, or in when path is empty or "-".
func openInput(in io.Reader, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(in), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// readSecret reads the secret from path, or from in. A terminal is prompted
// without echo; piped input is taken byte for byte.
func readSecret(in io.Reader, prompt io.Writer, path string) ([]byte, error) {
	if f, ok := in.(*os.File); ok && (path == "" || path == "-") && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Secret: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return nil, fmt.Errorf("read secret: %w", err)
		}
		return secret, nil
	}

	r, err := openInput(in, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	secret, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read secret: %w", err)
	}

	return secret, nil
}
