package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/infrastructure/repository/memory"
)

type fakeApplicants struct {
	rows []snapshot.Applicant
	err  error
}

func (f *fakeApplicants) FetchApplicants(_ context.Context) ([]snapshot.Applicant, error) {
	return f.rows, f.err
}

type fakeGuilds struct {
	rows   []snapshot.GuildListing
	err    error
	region string
}

func (f *fakeGuilds) SearchRecruitingGuilds(_ context.Context, region string) ([]snapshot.GuildListing, error) {
	f.region = region
	return f.rows, f.err
}

func TestDashboardService_SyncAndStatus(t *testing.T) {
	snapshots := memory.NewSnapshotRepository()
	applicants := &fakeApplicants{rows: []snapshot.Applicant{{Name: "Ratayu"}}}
	guilds := &fakeGuilds{rows: []snapshot.GuildListing{{Name: "Liquid", Region: "US"}}}
	svc := NewDashboardService(snapshots, applicants, guilds, "us", nil)

	status, err := svc.Status(t.Context())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Applicants || status.Guilds {
		t.Fatalf("nothing synced yet, got %+v", status)
	}

	if _, err := svc.SyncApplicants(t.Context()); err != nil {
		t.Fatalf("sync applicants: %v", err)
	}
	if _, err := svc.SyncGuilds(t.Context()); err != nil {
		t.Fatalf("sync guilds: %v", err)
	}
	if guilds.region != "us" {
		t.Fatalf("directory search must use the configured region, got %q", guilds.region)
	}

	doc, err := svc.GetApplicants(t.Context())
	if err != nil || len(doc.Applicants) != 1 || doc.LastUpdated == nil {
		t.Fatalf("get applicants: %+v err=%v", doc, err)
	}

	status, err = svc.Status(t.Context())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Applicants || !status.Guilds || status.Council || status.Community {
		t.Fatalf("status must reflect synced documents only, got %+v", status)
	}
}

func TestDashboardService_GetBeforeSyncIsNotFound(t *testing.T) {
	svc := NewDashboardService(memory.NewSnapshotRepository(), nil, nil, "us", nil)

	if _, err := svc.GetApplicants(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetGuilds(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDashboardService_ProviderErrorDoesNotOverwrite(t *testing.T) {
	snapshots := memory.NewSnapshotRepository()
	applicants := &fakeApplicants{rows: []snapshot.Applicant{{Name: "Ratayu"}}}
	svc := NewDashboardService(snapshots, applicants, nil, "us", nil)

	if _, err := svc.SyncApplicants(t.Context()); err != nil {
		t.Fatalf("sync applicants: %v", err)
	}

	applicants.err = errors.New("sheet unreachable")
	if _, err := svc.SyncApplicants(t.Context()); err == nil {
		t.Fatal("provider failure must surface")
	}

	doc, err := svc.GetApplicants(t.Context())
	if err != nil || len(doc.Applicants) != 1 {
		t.Fatalf("failed sync must keep the previous document: %+v err=%v", doc, err)
	}
}
