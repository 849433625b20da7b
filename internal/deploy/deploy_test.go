package deploy

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 records uploads and deletes in memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string // key -> content type
	deleted []string
	remote  []string // keys returned by ListObjectsV2
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]string)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[*params.Key] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var contents []types.Object
	for _, key := range f.remote {
		k := key
		contents = append(contents, types.Object{Key: &k})
	}
	truncated := false
	return &s3.ListObjectsV2Output{Contents: contents, IsTruncated: &truncated}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func writeDist(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDeployUploadsAllFiles(t *testing.T) {
	dist := writeDist(t, map[string]string{
		"index.html":        "<html></html>",
		"assets/styles.css": "body{}",
		"assets/app.js":     "console.log(1)",
	})

	client := newFakeS3()
	d := New(client, Options{Bucket: "site"})

	result, err := d.Deploy(context.Background(), dist)
	if err != nil {
		t.Fatalf("Deploy error: %v", err)
	}

	if result.Uploaded != 3 {
		t.Errorf("Uploaded = %d, want 3", result.Uploaded)
	}
	if result.Bytes == 0 {
		t.Error("Bytes should be counted")
	}

	ct, ok := client.objects["assets/styles.css"]
	if !ok {
		t.Fatalf("styles.css not uploaded: %v", client.objects)
	}
	if !strings.Contains(ct, "text/css") {
		t.Errorf("content type = %q, want text/css", ct)
	}
}

func TestDeployWithPrefix(t *testing.T) {
	dist := writeDist(t, map[string]string{"index.html": "<html></html>"})

	client := newFakeS3()
	d := New(client, Options{Bucket: "site", Prefix: "v2"})

	if _, err := d.Deploy(context.Background(), dist); err != nil {
		t.Fatalf("Deploy error: %v", err)
	}
	if _, ok := client.objects["v2/index.html"]; !ok {
		t.Errorf("expected key v2/index.html, got %v", client.objects)
	}
}

func TestDeployPrunesStaleObjects(t *testing.T) {
	dist := writeDist(t, map[string]string{"index.html": "<html></html>"})

	client := newFakeS3()
	client.remote = []string{"index.html", "old.abc123.js"}

	d := New(client, Options{Bucket: "site", Prune: true})
	result, err := d.Deploy(context.Background(), dist)
	if err != nil {
		t.Fatalf("Deploy error: %v", err)
	}

	if result.Pruned != 1 {
		t.Errorf("Pruned = %d, want 1", result.Pruned)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "old.abc123.js" {
		t.Errorf("deleted = %v, want [old.abc123.js]", client.deleted)
	}
}

func TestDeployEmptyDist(t *testing.T) {
	d := New(newFakeS3(), Options{Bucket: "site"})

	_, err := d.Deploy(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Expected error for empty dist")
	}
	if !strings.Contains(err.Error(), "RX400") {
		t.Errorf("error = %v, want RX400", err)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index.html", "text/html"},
		{"app.js", "javascript"},
		{"styles.css", "text/css"},
		{"binary.xyz123", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := contentType(tt.path); !strings.Contains(got, tt.want) {
			t.Errorf("contentType(%q) = %q, want containing %q", tt.path, got, tt.want)
		}
	}
}
