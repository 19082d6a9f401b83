package commands

import (
	"os"
	"testing"

	"github.com/go-home-admin/clientgen/console/commands/openapi"
	"github.com/go-home-admin/clientgen/console/commands/typescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *openapi.Spec {
	return &openapi.Spec{
		Swagger: "2.0",
		Info: openapi.Info{
			Title:       "Pet API",
			Description: "演示用文档",
			Version:     "1.0.0",
		},
		Host:     "api.example.com",
		Schemes:  []string{"https"},
		BasePath: "/v1",
		Paths: map[string]*openapi.Path{
			"/users/{id}": {
				Get: &openapi.Endpoint{
					Responses: map[string]*openapi.Response{
						"200": {Description: "ok", Schema: &openapi.Schema{Ref: "#/definitions/User"}},
					},
				},
			},
		},
		Definitions: map[string]*openapi.Schema{
			"User": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"id":   {Type: "integer"},
					"name": {Type: "string"},
				},
				Required: []string{"id"},
			},
			"Address": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"city": {Type: "string"},
				},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	spec := testSpec()
	out := t.TempDir()

	interfaces, err := generate(spec, typescript.NewGenerator(spec), out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Address", "User"}, interfaces)

	user, err := os.ReadFile(out + "/interfaces/User.ts")
	require.NoError(t, err)
	assert.Contains(t, string(user), "export interface User {")
	assert.Contains(t, string(user), "    id: number;")
	assert.Contains(t, string(user), "    name?: string;")

	service, err := os.ReadFile(out + "/service.ts")
	require.NoError(t, err)
	assert.Contains(t, string(service), "axios.defaults.baseURL = 'https://api.example.com/v1';")
	assert.Contains(t, string(service), "import { Address } from './interfaces/Address';")
	assert.Contains(t, string(service), "import { User } from './interfaces/User';")
	assert.Contains(t, string(service), "export async function getUsersById(id: string, config?: any): Promise<User> {")
}

// 同一份文档生成两次, 产物完全一致
func TestGenerateIdempotent(t *testing.T) {
	spec := testSpec()
	out1 := t.TempDir()
	out2 := t.TempDir()

	_, err := generate(spec, typescript.NewGenerator(spec), out1)
	require.NoError(t, err)
	_, err = generate(spec, typescript.NewGenerator(spec), out2)
	require.NoError(t, err)

	for _, f := range []string{"/interfaces/User.ts", "/interfaces/Address.ts", "/service.ts"} {
		a, err := os.ReadFile(out1 + f)
		require.NoError(t, err)
		b, err := os.ReadFile(out2 + f)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}
