package openapi

// Spec swagger文档解析后的内存结构, 生成过程中只读
type Spec struct {
	Swagger     string             `json:"swagger"`
	Info        Info               `json:"info"`
	Host        string             `json:"host,omitempty"`
	Schemes     []string           `json:"schemes,omitempty"`
	BasePath    string             `json:"basePath,omitempty"`
	Paths       map[string]*Path   `json:"paths,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type Path struct {
	Get    *Endpoint `json:"get,omitempty"`
	Post   *Endpoint `json:"post,omitempty"`
	Put    *Endpoint `json:"put,omitempty"`
	Delete *Endpoint `json:"delete,omitempty"`
}

type Endpoint struct {
	Summary     string               `json:"summary,omitempty"`
	OperationID string               `json:"operationId,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty"`
}

type Response struct {
	Description string  `json:"description"`
	Schema      *Schema `json:"schema,omitempty"`
}

type Schema struct {
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Ref    string `json:"$ref,omitempty"`

	// objects
	Required   []string           `json:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`

	// is an array
	Items *Schema `json:"items,omitempty"`
}
