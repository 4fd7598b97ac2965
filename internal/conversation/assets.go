package conversation

import (
	"fmt"
	"os"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// FileAssets serves the menu PDF from the local filesystem, checking
// availability before every offer.
type FileAssets struct {
	menuPath string
}

// NewFileAssets constructs FileAssets for the configured menu path.
func NewFileAssets(menuPath string) *FileAssets {
	return &FileAssets{menuPath: menuPath}
}

// MenuDocument returns a reference to the menu PDF or ErrAssetUnavailable.
func (a *FileAssets) MenuDocument() (model.Document, error) {
	if a.menuPath == "" {
		return model.Document{}, domainErrors.ErrAssetUnavailable
	}
	if _, err := os.Stat(a.menuPath); err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", domainErrors.ErrAssetUnavailable, err)
	}
	return model.Document{Path: a.menuPath, Caption: "📄 Aqui está o nosso cardápio!"}, nil
}
