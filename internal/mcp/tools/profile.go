package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetUserProfileParams defines the arguments for the get_user_profile tool
type GetUserProfileParams struct{}

// UpdateUserProfileParams defines the arguments for the update_user_profile tool
type UpdateUserProfileParams struct {
	Name        string   `json:"name,omitempty" jsonschema:"Full name"`
	Headline    string   `json:"headline,omitempty" jsonschema:"Professional headline"`
	Bio         string   `json:"bio,omitempty" jsonschema:"Short bio"`
	Location    string   `json:"location,omitempty" jsonschema:"Home location"`
	LinkedInURL string   `json:"linkedin_url,omitempty" jsonschema:"LinkedIn profile URL"`
	Skills      []string `json:"skills,omitempty" jsonschema:"Skill list, replaces the stored set when supplied"`
}

type userProfile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Headline    string   `json:"headline"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	LinkedInURL string   `json:"linkedInUrl"`
	Skills      []string `json:"skills"`
}

type profileTools struct {
	deps Deps
}

func registerProfileTools(server *sdkmcp.Server, deps Deps) {
	t := profileTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_user_profile",
		Description: "Show the user's JobJourney profile.",
	}, t.getProfile)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_user_profile",
		Description: "Update the user's JobJourney profile. Only the supplied fields are changed.",
	}, t.updateProfile)
}

func (t profileTools) getProfile(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetUserProfileParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/profile", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch profile", env), nil, nil
	}

	var profile userProfile
	if err := env.Decode(&profile); err != nil {
		return nil, nil, err
	}

	return textResult(renderUserProfile(profile)), nil, nil
}

func (t profileTools) updateProfile(ctx context.Context, _ *sdkmcp.CallToolRequest, params *UpdateUserProfileParams) (*sdkmcp.CallToolResult, any, error) {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Headline != "" {
		body["headline"] = params.Headline
	}
	if params.Bio != "" {
		body["bio"] = params.Bio
	}
	if params.Location != "" {
		body["location"] = params.Location
	}
	if params.LinkedInURL != "" {
		body["linkedInUrl"] = params.LinkedInURL
	}
	if len(params.Skills) > 0 {
		body["skills"] = params.Skills
	}

	if len(body) == 0 {
		return textResult("Nothing to update: no fields were supplied."), nil, nil
	}

	env, err := t.deps.Client.Put(ctx, "/api/profile", body)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("update profile", env), nil, nil
	}

	return textResult("Profile updated."), nil, nil
}

func renderUserProfile(profile userProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", orNA(profile.Name))
	if profile.Headline != "" {
		fmt.Fprintf(&b, " - %s", profile.Headline)
	}
	fmt.Fprintf(&b, "\nEmail: %s", orNA(profile.Email))
	fmt.Fprintf(&b, "\nLocation: %s", orNA(profile.Location))
	if profile.LinkedInURL != "" {
		fmt.Fprintf(&b, "\nLinkedIn: %s", profile.LinkedInURL)
	}
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s", strings.Join(profile.Skills, ", "))
	} else {
		b.WriteString("\nSkills: None listed")
	}
	if profile.Bio != "" {
		fmt.Fprintf(&b, "\n\nBio:\n%s", truncate(profile.Bio, bioBudget))
	}

	return b.String()
}
