package domain

import (
	"sort"
	"strings"
)

// Vault is the full in-memory view of the record store.
type Vault struct {
	Items map[ItemID]Item
}

func NewVault() Vault {
	return Vault{Items: map[ItemID]Item{}}
}

func (v Vault) Get(id ItemID) (Item, bool) {
	item, ok := v.Items[id]
	return item, ok
}

func (v *Vault) Put(item Item) {
	if v.Items == nil {
		v.Items = map[ItemID]Item{}
	}
	v.Items[item.ID] = item
}

func (v Vault) Len() int {
	return len(v.Items)
}

// List returns items oldest first, ties broken by id.
func (v Vault) List() []Item {
	items := make([]Item, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items
}

// Lookup accepts either an item id or a source URL.
func (v Vault) Lookup(ref string) (Item, error) {
	ref = strings.TrimSpace(ref)
	if item, ok := v.Items[ItemID(ref)]; ok {
		return item, nil
	}
	if item, ok := v.Items[DeriveID(ref)]; ok {
		return item, nil
	}

	return Item{}, ErrItemNotFound
}
