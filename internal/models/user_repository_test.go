package models

import (
	"os"
	"path/filepath"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})          {}
func (nopLogger) Info(string, map[string]interface{})           {}
func (nopLogger) Warning(string, map[string]interface{})        {}
func (nopLogger) Error(string, error, map[string]interface{})   {}

func tempRepo(t *testing.T) *UserRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_info.json")
	return NewUserRepository(path, nopLogger{})
}

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := tempRepo(t)

	in := UserProfile{
		Gender: "Female", DOB: "1990-04-12", Age: 35,
		Weight: 61.5, Height: 168, BMI: 21.79, DiabetesType: "Type 1",
	}
	if err := repo.Save("Alice", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, ok := repo.Load("Alice")
	if !ok {
		t.Fatal("profile not found after save")
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestUserRepository_SaveOverwritesSameName(t *testing.T) {
	repo := tempRepo(t)

	if err := repo.Save("Bob", UserProfile{Weight: 80, Height: 180}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save("Bob", UserProfile{Weight: 78, Height: 180}); err != nil {
		t.Fatal(err)
	}

	users := repo.LoadAll()
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users["Bob"].Weight != 78 {
		t.Errorf("Weight = %v, want 78 (re-save should overwrite)", users["Bob"].Weight)
	}
}

func TestUserRepository_MissingFileIsEmptySet(t *testing.T) {
	repo := tempRepo(t)
	if users := repo.LoadAll(); len(users) != 0 {
		t.Errorf("got %d users from missing file, want 0", len(users))
	}
}

func TestUserRepository_CorruptFileIsEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_info.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := NewUserRepository(path, nopLogger{})

	if users := repo.LoadAll(); len(users) != 0 {
		t.Errorf("got %d users from corrupt file, want 0", len(users))
	}

	// Saving after corruption starts a fresh set rather than failing.
	if err := repo.Save("Carol", UserProfile{Weight: 55, Height: 160}); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	if _, ok := repo.Load("Carol"); !ok {
		t.Error("profile not found after saving over corrupt file")
	}
}

func TestUserRepository_NamesSorted(t *testing.T) {
	repo := tempRepo(t)
	for _, name := range []string{"Zoe", "Alice", "Mallory"} {
		if err := repo.Save(name, UserProfile{Weight: 60, Height: 170}); err != nil {
			t.Fatal(err)
		}
	}

	names := repo.Names()
	want := []string{"Alice", "Mallory", "Zoe"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
