package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
	apierrors "github.com/Pavan19102006/Jagadeesh-project/internal/errors"
)

func TestApply(t *testing.T) {
	t.Parallel()
	f := respond(types.Application{ID: 11, Status: types.ApplicationPending, Job: types.JobPosting{ID: 4}})
	got, err := Apply(context.Background(), f, types.ApplyRequest{JobID: 4, CoverLetter: "I love books"})
	if err != nil || got.ID != 11 || got.Job.ID != 4 {
		t.Fatalf("Apply unexpected: got=%+v err=%v", got, err)
	}
	c := f.last()
	if c.method != http.MethodPost || c.endpoint != "/applications" {
		t.Fatalf("unexpected call %+v", c)
	}
	if body := c.body.(types.ApplyRequest); body.JobID != 4 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestApply_RequiresJobID(t *testing.T) {
	t.Parallel()
	f := &stubFetcher{}
	if _, err := Apply(context.Background(), f, types.ApplyRequest{}); !apierrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatal("no request expected")
	}
}

func TestListingApplications(t *testing.T) {
	t.Parallel()
	f := respond([]types.Application{{ID: 1}, {ID: 2}})
	mine, err := MyApplications(context.Background(), f)
	if err != nil || len(mine) != 2 {
		t.Fatalf("MyApplications unexpected: got=%+v err=%v", mine, err)
	}
	if f.last().endpoint != "/applications/my" {
		t.Fatalf("unexpected endpoint %q", f.last().endpoint)
	}
	all, err := ListApplications(context.Background(), f)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListApplications unexpected: got=%+v err=%v", all, err)
	}
	if f.last().endpoint != "/applications" {
		t.Fatalf("unexpected endpoint %q", f.last().endpoint)
	}
}

func TestGetApplication(t *testing.T) {
	t.Parallel()
	f := respond(types.Application{ID: 3, AdminNotes: "see me"})
	got, err := GetApplication(context.Background(), f, 3)
	if err != nil || got.AdminNotes != "see me" {
		t.Fatalf("GetApplication unexpected: got=%+v err=%v", got, err)
	}
	if f.last().endpoint != "/applications/3" {
		t.Fatalf("unexpected endpoint %q", f.last().endpoint)
	}
}

func TestWithdrawApplication_NoContent(t *testing.T) {
	t.Parallel()
	f := &stubFetcher{}
	got, err := WithdrawApplication(context.Background(), f, 3)
	if err != nil || got != nil {
		t.Fatalf("expected nil result on 204, got=%+v err=%v", got, err)
	}
	if c := f.last(); c.method != http.MethodPut || c.endpoint != "/applications/3/withdraw" {
		t.Fatalf("unexpected call %+v", c)
	}
}

func TestReviewApplication(t *testing.T) {
	t.Parallel()
	f := respond(types.Application{ID: 8, Status: types.ApplicationApproved})
	got, err := ReviewApplication(context.Background(), f, 8, types.ReviewRequest{Status: types.ApplicationApproved, AdminNotes: "welcome"})
	if err != nil || got.Status != types.ApplicationApproved {
		t.Fatalf("ReviewApplication unexpected: got=%+v err=%v", got, err)
	}
	if c := f.last(); c.method != http.MethodPut || c.endpoint != "/applications/8/review" {
		t.Fatalf("unexpected call %+v", c)
	}

	f2 := &stubFetcher{}
	if _, err := ReviewApplication(context.Background(), f2, 8, types.ReviewRequest{Status: types.ApplicationPending}); err == nil {
		t.Fatal("expected validation error for PENDING decision")
	}
	if len(f2.calls) != 0 {
		t.Fatal("no request expected")
	}
}
