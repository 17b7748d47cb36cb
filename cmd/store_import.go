package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// storeNamespace derives stable ids, so re-importing a file updates rows instead of duplicating them.
var storeNamespace = uuid.MustParse("0f1c3c1e-7a55-4f5a-9d0e-5b7f3f6c2a10")

type storeFile struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Departments []departmentFile `json:"departments"`
}

type departmentFile struct {
	Label    string        `json:"label"`
	Managers []managerFile `json:"managers"`
}

type managerFile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type storeSaver interface {
	Save(ctx context.Context, store *directory.Store) error
}

// ImportStores reads a JSON array of stores and saves each one. It stops at the first invalid store.
func ImportStores(ctx context.Context, r io.Reader, repo storeSaver) (int, error) {
	var files []storeFile
	if err := json.NewDecoder(r).Decode(&files); err != nil {
		return 0, fmt.Errorf("failed to decode store file: %w", err)
	}

	for i, f := range files {
		store, err := f.toDomain()
		if err != nil {
			return i, fmt.Errorf("store %d (%s): %w", i, f.Code, err)
		}
		if err = repo.Save(ctx, store); err != nil {
			return i, fmt.Errorf("store %d (%s): %w", i, f.Code, err)
		}
	}

	return len(files), nil
}

func (f storeFile) toDomain() (*directory.Store, error) {
	storeID, err := stableID("store", f.Code)
	if err != nil {
		return nil, err
	}

	departments := make([]directory.Department, 0, len(f.Departments))
	for _, d := range f.Departments {
		managers := make([]directory.Manager, 0, len(d.Managers))
		for _, m := range d.Managers {
			phone, pErr := kernel.NewPhone(m.Phone)
			if pErr != nil {
				return nil, pErr
			}
			managerID, idErr := stableID("manager", f.Code, d.Label, m.Name, phone.Digits())
			if idErr != nil {
				return nil, idErr
			}
			manager, mErr := directory.NewManager(managerID, m.Name, phone)
			if mErr != nil {
				return nil, mErr
			}
			managers = append(managers, manager)
		}

		department, dErr := directory.NewDepartment(d.Label, managers)
		if dErr != nil {
			return nil, dErr
		}
		departments = append(departments, department)
	}

	return directory.NewStore(storeID, f.Code, f.Name, f.Address, departments)
}

func stableID(parts ...string) (kernel.UUID, error) {
	name := ""
	for _, p := range parts {
		name += p + "\x00"
	}
	id := uuid.NewSHA1(storeNamespace, []byte(name))
	return kernel.UUIDFromBytes(id[:])
}
