// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

const downloadsTable = "downloads"

var downloadColumns = []string{
	"paste_id",
	"attachment_name",
	"path",
	"size",
	"sha256",
	"downloaded_at",
}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveDownloadQuery(rec models.DownloadRecord) (string, []any, error) {
	return psql.
		Replace(downloadsTable).
		Columns(downloadColumns...).
		Values(
			rec.PasteID,
			rec.AttachmentName,
			rec.Path,
			rec.Size,
			rec.SHA256,
			rec.DownloadedAt.UTC(),
		).
		ToSql()
}

func buildGetDownloadQuery(pasteID string) (string, []any, error) {
	return psql.
		Select(downloadColumns...).
		From(downloadsTable).
		Where(sq.Eq{"paste_id": pasteID}).
		Limit(1).
		ToSql()
}

func buildListDownloadsQuery() (string, []any, error) {
	return psql.
		Select(downloadColumns...).
		From(downloadsTable).
		OrderBy("downloaded_at DESC", "paste_id").
		ToSql()
}
