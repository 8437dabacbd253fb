package emitter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

// Suffix ends the name of every metadata document file
const Suffix = "__DOC.json"

// Filename returns the document filename for a dataset short name and version marker
func Filename(shortName, version string) string {
	return fmt.Sprintf("%s_v%s%s", shortName, version, Suffix)
}

// createFile opens the document file for writing
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Emit writes body to the named file in dir, replacing any existing file.
// The file is closed whether or not the write succeeds, and a partially
// written file is removed.
func Emit(ctx context.Context, dir, name string, body []byte) (string, error) {
	path := filepath.Join(dir, name)
	logData := log.Data{"path": path}

	f, err := createFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create metadata document file")
	}

	if err = WriteTo(f, body); err != nil {
		log.Error(ctx, "error writing metadata document", err, logData)
		f.Close()
		if rerr := os.Remove(path); rerr != nil && !os.IsNotExist(rerr) {
			log.Error(ctx, "error removing partial metadata document", rerr, logData)
		}
		return "", err
	}

	if err = f.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close metadata document file")
	}

	logData["bytes"] = len(body)
	log.Info(ctx, "metadata document written", logData)
	return path, nil
}

// WriteTo writes all of body to w
func WriteTo(w io.Writer, body []byte) error {
	n, err := w.Write(body)
	if err != nil {
		return errors.Wrap(err, "failed to write metadata document")
	}
	if n < len(body) {
		return errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(body))
	}
	return nil
}
