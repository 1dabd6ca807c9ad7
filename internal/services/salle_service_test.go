package services

import (
	"errors"
	"testing"

	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/models"
)

func TestCreateSalle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSalleService(db)
	admin := seedUser(t, db, "admin@x.com", "s", true)

	salle, err := svc.Create(&dto.CreateSalleRequest{Name: "Salle A", Phone: "0522000000"}, admin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if salle.ID == 0 {
		t.Fatal("expected generated id")
	}
	if salle.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
	if salle.CreatorID != admin.ID {
		t.Fatal("expected admin creator to be recorded")
	}

	if _, err := svc.Create(&dto.CreateSalleRequest{Name: ""}, admin); !errors.Is(err, ErrSalleName) {
		t.Fatalf("expected ErrSalleName, got %v", err)
	}
}

func TestUpdateSallePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSalleService(db)
	admin := seedUser(t, db, "admin@x.com", "s", true)
	salle, _ := svc.Create(&dto.CreateSalleRequest{Name: "Salle A", Phone: "0522000000"}, admin)

	phone := "0522111111"
	updated, err := svc.Update(salle.ID, &dto.UpdateSalleRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("expected updated phone, got %q", updated.Phone)
	}
	if updated.Name != "Salle A" {
		t.Fatalf("name should be untouched, got %q", updated.Name)
	}

	if _, err := svc.Update(999, &dto.UpdateSalleRequest{Phone: &phone}); !errors.Is(err, ErrSalleNotFound) {
		t.Fatalf("expected ErrSalleNotFound, got %v", err)
	}
}

func TestDeleteSalleRemovesLinks(t *testing.T) {
	db := setupTestDB(t)
	salleSvc := NewSalleService(db)
	linkSvc := NewLinkService(db)

	admin := seedUser(t, db, "admin@x.com", "s", true)
	member := seedUser(t, db, "member@x.com", "s", false)
	salle, _ := salleSvc.Create(&dto.CreateSalleRequest{Name: "Salle A"}, admin)
	if _, err := linkSvc.Create(member.ID, salle.ID, admin); err != nil {
		t.Fatalf("link: %v", err)
	}

	if err := salleSvc.Delete(salle.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := salleSvc.Get(salle.ID); !errors.Is(err, ErrSalleNotFound) {
		t.Fatalf("expected ErrSalleNotFound, got %v", err)
	}
	var linkCount int64
	db.Model(&models.UserSalle{}).Count(&linkCount)
	if linkCount != 0 {
		t.Fatalf("expected links to cascade, got %d", linkCount)
	}

	if err := salleSvc.Delete(salle.ID); !errors.Is(err, ErrSalleNotFound) {
		t.Fatalf("expected ErrSalleNotFound on second delete, got %v", err)
	}
}
