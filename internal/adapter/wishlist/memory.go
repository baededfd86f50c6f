// Package wishlist provides the in-memory wishlist folder store. Folders
// live only for the lifetime of the process.
package wishlist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
)

var _ port.WishlistStorage = (*MemoryStore)(nil)

type MemoryStore struct {
	mu      sync.RWMutex
	folders []*domain.WishlistFolder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateFolder(name string) (domain.WishlistFolder, error) {
	const op = "MemoryStore.CreateFolder"

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.WishlistFolder{}, fmt.Errorf("%s: folder name is empty", op)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := &domain.WishlistFolder{ID: uuid.NewString(), Name: name}
	s.folders = append(s.folders, folder)
	return cloneFolder(folder), nil
}

// Folders returns folder snapshots in creation order.
func (s *MemoryStore) Folders() []domain.WishlistFolder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WishlistFolder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, cloneFolder(f))
	}
	return out
}

func (s *MemoryStore) AddProduct(folderID string, p domain.Product) error {
	const op = "MemoryStore.AddProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.find(folderID)
	if folder == nil {
		return fmt.Errorf("%s: %q: %w", op, folderID, domain.ErrFolderNotFound)
	}

	for _, existing := range folder.Products {
		if existing.ID == p.ID {
			return fmt.Errorf("%s: %q: %w", op, p.ID, domain.ErrDuplicateProduct)
		}
	}

	folder.Products = append(folder.Products, p)
	return nil
}

func (s *MemoryStore) RemoveProduct(folderID, productID string) error {
	const op = "MemoryStore.RemoveProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.find(folderID)
	if folder == nil {
		return fmt.Errorf("%s: %q: %w", op, folderID, domain.ErrFolderNotFound)
	}

	for i, existing := range folder.Products {
		if existing.ID == productID {
			folder.Products = append(folder.Products[:i], folder.Products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", op, productID, domain.ErrNotFound)
}

func (s *MemoryStore) DeleteFolder(folderID string) error {
	const op = "MemoryStore.DeleteFolder"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.folders {
		if f.ID == folderID {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %q: %w", op, folderID, domain.ErrFolderNotFound)
}

// find expects the caller to hold the lock.
func (s *MemoryStore) find(folderID string) *domain.WishlistFolder {
	for _, f := range s.folders {
		if f.ID == folderID {
			return f
		}
	}
	return nil
}

func cloneFolder(f *domain.WishlistFolder) domain.WishlistFolder {
	out := domain.WishlistFolder{ID: f.ID, Name: f.Name}
	out.Products = append(out.Products, f.Products...)
	return out
}
