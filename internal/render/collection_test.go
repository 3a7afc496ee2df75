package render

import (
	"strings"
	"testing"

	"endpoint-docgen/internal/model"
)

func TestAnchor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"GET /users", "get-users"},
		{"POST /api/v1/users/{user_id}/orders", "post-apiv1usersuser_idorders"},
		{"DELETE /items", "delete-items"},
	}
	for _, tc := range cases {
		if got := Anchor(tc.in); got != tc.want {
			t.Errorf("Anchor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollectionTOCAndSections(t *testing.T) {
	get := model.NewEndpointRecord("get__users.txt")
	get.Method = "GET"
	get.Path = "/users"
	get.Summary = "List users"

	post := model.NewEndpointRecord("post__users.txt")
	post.Method = "POST"
	post.Path = "/users"
	post.Responses = []model.ResponseEntry{{Status: "201", Description: "Created"}}

	md := Collection("Store API", []*model.EndpointRecord{get, post})

	if !strings.HasPrefix(md, "# Store API\n") {
		t.Errorf("title missing: %q", firstLineOf(md))
	}
	if !strings.Contains(md, "## Table of Contents") {
		t.Error("TOC heading missing")
	}
	if !strings.Contains(md, "1. [GET /users](#get-users)") {
		t.Error("first TOC entry missing or unnumbered")
	}
	if !strings.Contains(md, "2. [POST /users](#post-users)") {
		t.Error("second TOC entry missing")
	}
	if !strings.Contains(md, "## GET /users") || !strings.Contains(md, "## POST /users") {
		t.Error("endpoint sections missing")
	}
	if !strings.Contains(md, "#### Status 201") {
		t.Error("response subsection missing")
	}

	// Input order is preserved
	if strings.Index(md, "## GET /users") > strings.Index(md, "## POST /users") {
		t.Error("sections not in input order")
	}
}

func TestCollectionDefaultTitle(t *testing.T) {
	md := Collection("", nil)
	if !strings.HasPrefix(md, "# API Documentation\n") {
		t.Errorf("default title missing: %q", firstLineOf(md))
	}
}

func TestCollectionHeaderlessRecord(t *testing.T) {
	rec := model.NewEndpointRecord("mystery.txt")

	md := Collection("API", []*model.EndpointRecord{rec})
	if !strings.Contains(md, "[mystery.txt](#mysterytxt)") {
		t.Errorf("headerless record should link by file name: %s", md)
	}
	if !strings.Contains(md, "## mystery.txt") {
		t.Error("headerless record section missing")
	}
}
