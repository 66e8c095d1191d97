package upload

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_TypeResolution(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		wantKind Kind
		wantErr  bool
	}{
		{
			name:     "declared pdf",
			file:     File{Name: "resume", ContentType: "application/pdf", Size: 100},
			wantKind: KindPDF,
		},
		{
			name:     "declared text",
			file:     File{Name: "resume", ContentType: "text/plain", Size: 100},
			wantKind: KindText,
		},
		{
			name:     "declared text with charset",
			file:     File{Name: "resume", ContentType: "text/plain; charset=utf-8", Size: 100},
			wantKind: KindText,
		},
		{
			name:     "missing type, pdf extension",
			file:     File{Name: "resume.pdf", Size: 100},
			wantKind: KindPDF,
		},
		{
			name:     "missing type, txt extension",
			file:     File{Name: "resume.txt", Size: 100},
			wantKind: KindText,
		},
		{
			name:     "wrong declared type, pdf extension wins",
			file:     File{Name: "resume.PDF", ContentType: "application/octet-stream", Size: 100},
			wantKind: KindPDF,
		},
		{
			name:    "docx rejected",
			file:    File{Name: "resume.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Size: 100},
			wantErr: true,
		},
		{
			name:    "png rejected",
			file:    File{Name: "resume.png", ContentType: "image/png", Size: 100},
			wantErr: true,
		},
		{
			name:    "no type no extension rejected",
			file:    File{Name: "resume", Size: 100},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Validate(tt.file)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && kind != tt.wantKind {
				t.Errorf("Validate() kind = %q, want %q", kind, tt.wantKind)
			}
		})
	}
}

func TestValidate_SizeLimit(t *testing.T) {
	under := File{Name: "resume.pdf", ContentType: "application/pdf", Size: MaxFileBytes}
	if _, err := Validate(under); err != nil {
		t.Errorf("Validate() at exactly 10 MB rejected: %v", err)
	}

	over := File{Name: "resume.pdf", ContentType: "application/pdf", Size: MaxFileBytes + 1}
	_, err := Validate(over)
	if err == nil {
		t.Fatal("Validate() over 10 MB accepted")
	}
	if !strings.Contains(err.Error(), "10 MB") {
		t.Errorf("Validate() size error not user-readable: %q", err.Error())
	}
}

func TestValidate_ErrorIsUserFacing(t *testing.T) {
	_, err := Validate(File{Name: "malware.exe", Size: 10})
	if err == nil {
		t.Fatal("expected rejection")
	}
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *upload.Error", err)
	}
}
