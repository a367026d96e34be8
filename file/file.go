package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/tagfreq/conllu"
	sent "github.com/revelaction/tagfreq/sentence"
)

// Ext is the only accepted file extension.
const Ext = ".conllu"

var ErrExtension = errors.New("this type of file is not allowed, expected a " + Ext + " file")

// ReadDoc reads and parses the CoNLL-U file at path. The doc title is the
// base name of the file.
func ReadDoc(path string, opts ...conllu.Option) (sent.Doc, error) {
	if !strings.EqualFold(filepath.Ext(path), Ext) {
		return sent.Doc{}, fmt.Errorf("%s: %w", path, ErrExtension)
	}

	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, err
	}
	defer f.Close()

	doc, err := conllu.Parse(f, opts...)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("%s: %w", path, err)
	}

	doc.Title = filepath.Base(path)
	return doc, nil
}
