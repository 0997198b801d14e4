package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttachment(t *testing.T) {
	att, err := ParseAttachment([]byte(`{"attachment":"data:application/x-bittorrent;base64,ZDQ6dGVzdGU=","attachment_name":"repack.torrent","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, Attachment{
		Content: "data:application/x-bittorrent;base64,ZDQ6dGVzdGU=",
		Name:    "repack.torrent",
	}, att)
}

func TestParseAttachment_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"not json":           `hello`,
		"array":              `["a","b"]`,
		"missing attachment": `{"attachment_name":"a"}`,
		"missing name":       `{"attachment":"data:,"}`,
		"null name":          `{"attachment":"data:,","attachment_name":null}`,
		"numeric attachment": `{"attachment":42,"attachment_name":"a"}`,
		"truncated":          `{"attachment":"data:`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAttachment([]byte(input))
			require.ErrorIs(t, err, ErrAttachmentParse)
		})
	}
}

func TestAttachment_Decode(t *testing.T) {
	mediaType, data, err := Attachment{Content: "data:application/x-bittorrent;base64,ZDQ6dGVzdGU="}.Decode()
	require.NoError(t, err)
	assert.Equal(t, "application/x-bittorrent", mediaType)
	assert.Equal(t, []byte("d4:teste"), data)

	mediaType, data, err = Attachment{Content: "data:;base64,"}.Decode()
	require.NoError(t, err)
	assert.Empty(t, mediaType)
	assert.Empty(t, data)
}

func TestAttachment_Decode_Errors(t *testing.T) {
	for name, content := range map[string]string{
		"no scheme":    "application/x-bittorrent;base64,ZDQ6dGVzdGU=",
		"no separator": "data:application/x-bittorrent;base64",
		"not base64":   "data:text/plain,hello",
		"bad payload":  "data:text/plain;base64,***",
		"http url":     "https://example.com/file.torrent",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Attachment{Content: content}.Decode()
			require.ErrorIs(t, err, ErrInvalidDataURI)
		})
	}
}

func TestNewDataURI(t *testing.T) {
	att := Attachment{Content: NewDataURI("application/octet-stream", []byte{0, 1, 2})}

	mediaType, data, err := att.Decode()
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", mediaType)
	assert.Equal(t, []byte{0, 1, 2}, data)
}

func TestAttachment_FileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "game.torrent", want: "game.torrent"},
		{name: "unix path", input: "../../etc/passwd", want: "passwd"},
		{name: "windows path", input: `C:\Users\x\game.torrent`, want: "game.torrent"},
		{name: "trailing slash", input: "dir/", want: "dir"},
		{name: "empty", input: "", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "root", input: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Attachment{Name: tt.input}.FileName()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAttachmentName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttachment_ExactKeys(t *testing.T) {
	_, err := ParseAttachment([]byte(`{"ATTACHMENT":"data:,","Attachment_Name":"a"}`))
	require.ErrorIs(t, err, ErrAttachmentParse)

	att, err := ParseAttachment([]byte(`{"attachment":"data:,","attachment_name":"a","Attachment_Name":"b"}`))
	require.NoError(t, err)
	assert.Equal(t, "a", att.Name)
}
