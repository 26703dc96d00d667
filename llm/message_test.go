package llm

import "testing"

func TestRole_String(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want string
	}{
		{"system", RoleSystem, "system"},
		{"user", RoleUser, "user"},
		{"assistant", RoleAssistant, "assistant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.String(); got != tt.want {
				t.Errorf("Role.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{"system valid", RoleSystem, true},
		{"user valid", RoleUser, true},
		{"assistant valid", RoleAssistant, true},
		{"empty invalid", Role(""), false},
		{"unknown invalid", Role("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("Role.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		message Message
		want    bool
	}{
		{
			name: "valid system message",
			message: Message{
				Role:    RoleSystem,
				Content: "You classify compliance evidence documents",
			},
			want: true,
		},
		{
			name: "valid user message",
			message: Message{
				Role:    RoleUser,
				Content: "Classify the following document",
			},
			want: true,
		},
		{
			name: "valid assistant message",
			message: Message{
				Role:    RoleAssistant,
				Content: `{"tier":"TIER_1","confidence":0.8}`,
			},
			want: true,
		},
		{
			name: "empty content invalid",
			message: Message{
				Role: RoleUser,
			},
			want: false,
		},
		{
			name: "unknown role invalid",
			message: Message{
				Role:    Role("moderator"),
				Content: "hello",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.message.IsValid(); got != tt.want {
				t.Errorf("Message.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
