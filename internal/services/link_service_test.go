package services

import (
	"errors"
	"testing"

	"github.com/zineb-24/ReportingBackend/internal/dto"
)

func TestCreateLinkAndDuplicate(t *testing.T) {
	db := setupTestDB(t)
	linkSvc := NewLinkService(db)
	salleSvc := NewSalleService(db)

	admin := seedUser(t, db, "admin@x.com", "s", true)
	member := seedUser(t, db, "member@x.com", "s", false)
	salle, err := salleSvc.Create(&dto.CreateSalleRequest{Name: "Salle A", Phone: "0522000000"}, admin)
	if err != nil {
		t.Fatalf("create salle: %v", err)
	}

	link, err := linkSvc.Create(member.ID, salle.ID, admin)
	if err != nil {
		t.Fatalf("create link: %v", err)
	}
	if link.ID == 0 {
		t.Fatal("expected generated id")
	}
	if link.CreatorID != admin.ID {
		t.Fatal("expected admin creator to be recorded")
	}

	if _, err := linkSvc.Create(member.ID, salle.ID, admin); !errors.Is(err, ErrDuplicateLink) {
		t.Fatalf("expected ErrDuplicateLink, got %v", err)
	}

	// Duplicate attempt did not add a row.
	links, err := linkSvc.List(member.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected exactly one link, got %d", len(links))
	}
}

func TestCreateLinkUnknownTargets(t *testing.T) {
	db := setupTestDB(t)
	linkSvc := NewLinkService(db)
	salleSvc := NewSalleService(db)

	admin := seedUser(t, db, "admin@x.com", "s", true)
	salle, _ := salleSvc.Create(&dto.CreateSalleRequest{Name: "Salle A"}, admin)

	if _, err := linkSvc.Create(999, salle.ID, admin); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := linkSvc.Create(admin.ID, 999, admin); !errors.Is(err, ErrSalleNotFound) {
		t.Fatalf("expected ErrSalleNotFound, got %v", err)
	}
}

func TestListLinksFilters(t *testing.T) {
	db := setupTestDB(t)
	linkSvc := NewLinkService(db)
	salleSvc := NewSalleService(db)

	admin := seedUser(t, db, "admin@x.com", "s", true)
	u1 := seedUser(t, db, "u1@x.com", "s", false)
	u2 := seedUser(t, db, "u2@x.com", "s", false)
	s1, _ := salleSvc.Create(&dto.CreateSalleRequest{Name: "S1"}, admin)
	s2, _ := salleSvc.Create(&dto.CreateSalleRequest{Name: "S2"}, admin)

	mustLink := func(userID, salleID uint) {
		t.Helper()
		if _, err := linkSvc.Create(userID, salleID, admin); err != nil {
			t.Fatalf("link %d-%d: %v", userID, salleID, err)
		}
	}
	mustLink(u1.ID, s1.ID)
	mustLink(u1.ID, s2.ID)
	mustLink(u2.ID, s1.ID)

	cases := []struct {
		name    string
		userID  uint
		salleID uint
		want    int
	}{
		{"no filter", 0, 0, 3},
		{"by user", u1.ID, 0, 2},
		{"by salle", 0, s1.ID, 2},
		{"both", u1.ID, s1.ID, 1},
		{"no match", u2.ID, s2.ID, 0},
	}
	for _, tc := range cases {
		links, err := linkSvc.List(tc.userID, tc.salleID)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(links) != tc.want {
			t.Fatalf("%s: expected %d links, got %d", tc.name, tc.want, len(links))
		}
	}

	// Preloads are populated for the nested rendering.
	links, _ := linkSvc.List(u1.ID, s1.ID)
	if links[0].User.Name == "" || links[0].Salle.Name == "" || links[0].Creator.ID != admin.ID {
		t.Fatal("expected preloaded user, salle and creator")
	}
}

func TestJoinQueriesStayConsistent(t *testing.T) {
	db := setupTestDB(t)
	linkSvc := NewLinkService(db)
	salleSvc := NewSalleService(db)

	admin := seedUser(t, db, "admin@x.com", "s", true)
	member := seedUser(t, db, "member@x.com", "s", false)
	salle, _ := salleSvc.Create(&dto.CreateSalleRequest{Name: "Salle A"}, admin)

	link, err := linkSvc.Create(member.ID, salle.ID, admin)
	if err != nil {
		t.Fatalf("create link: %v", err)
	}

	salles, err := linkSvc.SallesForUser(member.ID)
	if err != nil {
		t.Fatalf("salles for user: %v", err)
	}
	if len(salles) != 1 || salles[0].ID != salle.ID {
		t.Fatalf("expected salle %d in user's salles, got %+v", salle.ID, salles)
	}

	users, err := linkSvc.UsersForSalle(salle.ID)
	if err != nil {
		t.Fatalf("users for salle: %v", err)
	}
	if len(users) != 1 || users[0].ID != member.ID {
		t.Fatalf("expected user %d in salle's users, got %+v", member.ID, users)
	}

	if err := linkSvc.Delete(link.ID); err != nil {
		t.Fatalf("delete link: %v", err)
	}

	salles, _ = linkSvc.SallesForUser(member.ID)
	if len(salles) != 0 {
		t.Fatalf("expected no salles after unlink, got %d", len(salles))
	}
	users, _ = linkSvc.UsersForSalle(salle.ID)
	if len(users) != 0 {
		t.Fatalf("expected no users after unlink, got %d", len(users))
	}

	// Unknown ids yield empty sets, not errors.
	salles, err = linkSvc.SallesForUser(12345)
	if err != nil || len(salles) != 0 {
		t.Fatalf("expected empty set for unknown user, got %v %v", salles, err)
	}
}

func TestDeleteLinkUnknown(t *testing.T) {
	db := setupTestDB(t)
	linkSvc := NewLinkService(db)

	if err := linkSvc.Delete(42); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}
