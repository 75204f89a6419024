package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.CredentialSource = (*FileSource)(nil)

// teachersFile is the on-disk shape, shared by the JSON and TOML encodings.
type teachersFile struct {
	Teachers []teacherEntry `json:"teachers" toml:"teachers"`
}

// teacherEntry uses pointers to tell a missing key from an empty value.
type teacherEntry struct {
	Username *string `json:"username" toml:"username"`
	Password *string `json:"password" toml:"password"`
}

// credentials drops entries missing either key. An empty password is still a
// valid entry.
func (f teachersFile) credentials() entities.Credentials {
	pairs := make([]entities.TeacherCredential, 0, len(f.Teachers))
	for _, t := range f.Teachers {
		if t.Username == nil || t.Password == nil {
			continue
		}
		pairs = append(pairs, entities.TeacherCredential{Username: *t.Username, Password: *t.Password})
	}
	return entities.NewCredentials(pairs)
}

// FileSource reads teacher credentials from a JSON or TOML file on every Load.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file. A missing file is reported as
// domain.ErrCredentialsUnavailable.
func (s *FileSource) Load(ctx context.Context) (entities.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCredentialsUnavailable, s.path)
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var f teachersFile
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode credentials file %s: %w", s.path, err)
	}
	return f.credentials(), nil
}
