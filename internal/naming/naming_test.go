package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user-service", "UserService"},
		{"user_profile", "UserProfile"},
		{"blogPost", "BlogPost"},
		{"API", "Api"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pascalize(tt.in), "Pascalize(%q)", tt.in)
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user-service", "userService"},
		{"UserProfile", "userProfile"},
		{"order_items", "orderItems"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Camelize(tt.in), "Camelize(%q)", tt.in)
	}
}

func TestKebabAndSnake(t *testing.T) {
	assert.Equal(t, "user-profile", KebabCase("UserProfile"))
	assert.Equal(t, "user_profile", SnakeCase("UserProfile"))
	assert.Equal(t, "blog-post", Dasherize("blog_post"))
	assert.Equal(t, "blog_post", Underscore("blogPost"))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user", "users"},
		{"category", "categories"},
		{"box", "boxes"},
		{"dish", "dishes"},
		{"class", "classes"},
		{"day", "days"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pluralize(tt.in), "Pluralize(%q)", tt.in)
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "user"},
		{"categories", "category"},
		{"boxes", "box"},
		{"dishes", "dish"},
		{"classes", "class"},
		{"status", "statu"}, // simple rules only, mirrors Pluralize
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Singularize(tt.in), "Singularize(%q)", tt.in)
	}
}

func TestPluralizeSingularizeRoundTrip(t *testing.T) {
	for _, word := range []string{"user", "category", "box", "order"} {
		assert.Equal(t, word, Singularize(Pluralize(word)))
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	assert.Equal(t, "username", SanitizeIdentifier("user-name!"))
	assert.Equal(t, "_1stplace", SanitizeIdentifier("1st place"))
	assert.Equal(t, "_", SanitizeIdentifier("---"))
	assert.Equal(t, "already_ok", SanitizeIdentifier("already_ok"))
}
