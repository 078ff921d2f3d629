package gazetteer

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/geostation/locmap/pkg/constants"
	"github.com/geostation/locmap/pkg/errors"
)

// FormatYAML renders the document with deterministic node ordering and an
// optional generated-file head comment.
func (d *Document) FormatYAML(header ...string) (string, error) {
	opts := []yaml.EncodeOption{
		yaml.Indent(2),
		yaml.IndentSequence(false),
	}
	if len(header) > 0 {
		// One head comment carrying every line; separate comments under the
		// same path would collapse to a single line on encoding.
		texts := make([]string, 0, len(header))
		for _, line := range header {
			texts = append(texts, " "+line)
		}
		comment := yaml.HeadComment(texts...)
		opts = append(opts, yaml.WithComment(yaml.CommentMap{"$": []*yaml.Comment{comment}}))
	}
	data, err := yaml.MarshalWithOptions(d, opts...)
	if err != nil {
		return "", errors.WrapParse("yaml", "", err)
	}
	return string(data), nil
}

// Save writes the document to <basename>.yaml under dir.
func (d *Document) Save(dir, basename string, header ...string) error {
	out, err := d.FormatYAML(header...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	path := filepath.Join(dir, basename+".yaml")
	if err := os.WriteFile(path, []byte(out), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
