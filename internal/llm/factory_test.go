package llm

import "testing"

func TestFactoryCreateClient(t *testing.T) {
	f := &Factory{APIKey: "key", BaseURL: "http://localhost:1"}

	c, err := f.CreateClient("OpenAI", "llama-3.3-70b-versatile")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oa, ok := c.(*OpenAIClient)
	if !ok {
		t.Fatalf("want *OpenAIClient, got %T", c)
	}
	if oa.Model() != "llama-3.3-70b-versatile" {
		t.Fatalf("model: %q", oa.Model())
	}

	if _, err := f.CreateClient("nope", "m"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
	if _, err := (&Factory{}).CreateClient("openai", "m"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
