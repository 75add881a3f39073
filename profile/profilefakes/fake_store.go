package profilefakes

import "github.com/gymstack/gym-admin/profile"

// FakeStore is an in-memory stand-in for the cookie-backed profile store.
type FakeStore struct {
	user *profile.User

	SetCalls   int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// NewFakeStoreWithUser seeds the store, simulating an earlier login.
func NewFakeStoreWithUser(user profile.User) *FakeStore {
	return &FakeStore{user: &user}
}

func (f *FakeStore) SetUserData(user profile.User) {
	f.SetCalls++
	u := user
	f.user = &u
}

func (f *FakeStore) GetUserData() *profile.User {
	if f.user == nil {
		return nil
	}
	u := *f.user
	return &u
}

func (f *FakeStore) ClearUserData() {
	f.ClearCalls++
	f.user = nil
}

func (f *FakeStore) IsAuthenticated() bool {
	return f.user != nil
}
