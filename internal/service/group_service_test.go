package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/hisaab/pkg/api"
)

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)
	alice, bob := env.register(t, "alice"), env.register(t, "bob")

	resp, err := env.groups.CreateGroup(context.Background(), as(alice, &api.CreateGroupRequest{
		Name:      "Roommates",
		MemberIds: []int64{bob.id},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group := resp.Msg.Group
	if group.Id == 0 {
		t.Error("expected group ID to be generated")
	}
	if group.Name != "Roommates" || group.CreatedBy != alice.id {
		t.Errorf("group = %+v", group)
	}
	if len(group.MemberIds) != 2 {
		t.Errorf("expected 2 members, got %v", group.MemberIds)
	}
}

func TestCreateGroup_UnknownMember(t *testing.T) {
	env := setupTestServer(t)
	alice := env.register(t, "alice")

	_, err := env.groups.CreateGroup(context.Background(), as(alice, &api.CreateGroupRequest{
		Name:      "Ghosts",
		MemberIds: []int64{9999},
	}))
	wantCode(t, err, connect.CodeNotFound)
}

func TestCreateGroup_EmptyName(t *testing.T) {
	env := setupTestServer(t)
	alice := env.register(t, "alice")

	_, err := env.groups.CreateGroup(context.Background(), as(alice, &api.CreateGroupRequest{Name: ""}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")

	created, err := env.groups.CreateGroup(ctx, as(alice, &api.CreateGroupRequest{Name: "Trip"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.Id

	resp, err := env.groups.GetGroup(ctx, as(alice, &api.GetGroupRequest{GroupId: groupID}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Trip" {
		t.Errorf("expected name Trip, got %s", resp.Msg.Group.Name)
	}

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := env.groups.GetGroup(ctx, as(bob, &api.GetGroupRequest{GroupId: groupID}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := env.groups.GetGroup(ctx, as(alice, &api.GetGroupRequest{GroupId: 9999}))
		wantCode(t, err, connect.CodeNotFound)
	})
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")

	resp, err := env.groups.ListGroups(ctx, as(bob, &api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(resp.Msg.Groups))
	}

	for _, name := range []string{"Flat", "Trip"} {
		if _, err := env.groups.CreateGroup(ctx, as(alice, &api.CreateGroupRequest{Name: name})); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
	}

	resp, err = env.groups.ListGroups(ctx, as(alice, &api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 || resp.Msg.Groups[0].Name != "Flat" {
		t.Errorf("ListGroups = %+v", resp.Msg.Groups)
	}
}

func TestAddMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice, bob, carol := env.register(t, "alice"), env.register(t, "bob"), env.register(t, "carol")

	created, err := env.groups.CreateGroup(ctx, as(alice, &api.CreateGroupRequest{Name: "Flat"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.Id

	_, err = env.groups.AddMember(ctx, as(bob, &api.AddMemberRequest{GroupId: groupID, UserId: bob.id}))
	wantCode(t, err, connect.CodePermissionDenied)

	resp, err := env.groups.AddMember(ctx, as(alice, &api.AddMemberRequest{GroupId: groupID, UserId: bob.id}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if len(resp.Msg.Group.MemberIds) != 2 {
		t.Errorf("expected 2 members, got %v", resp.Msg.Group.MemberIds)
	}

	// New members can add others.
	if _, err := env.groups.AddMember(ctx, as(bob, &api.AddMemberRequest{GroupId: groupID, UserId: carol.id})); err != nil {
		t.Errorf("AddMember by new member failed: %v", err)
	}

	_, err = env.groups.AddMember(ctx, as(alice, &api.AddMemberRequest{GroupId: groupID, UserId: 9999}))
	wantCode(t, err, connect.CodeNotFound)
}
