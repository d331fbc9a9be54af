package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-sync/infrastructure/database/postgres"
	"github.com/vfg2006/creative-sync/internal/domain"
)

const (
	adsTable = "ads a"

	adsColumns = "a.id, a.account_id, a.platform_ad_id, a.creative_url, a.creative_thumbnail_url, " +
		"a.creative_video_url, a.stored_creative_url, a.stored_thumbnail_url, " +
		"a.creative_headline, a.creative_body, a.creative_cta, a.object_story_id, a.updated_at"
)

type AdRepository interface {
	GetByPlatformAdID(platformAdID string) (*domain.Ad, error)
	ListNeedingCreative(filter domain.CreativeBackfillFilter, limit uint64) ([]*domain.Ad, error)
	ListForStorageMigration(limit uint64) ([]*domain.Ad, error)
	UpdateCreative(adID string, patch domain.CreativeUpdate) error
	UpdateStoredCreative(adID string, storedURL string, freshCreativeURL *string) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) GetByPlatformAdID(platformAdID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		Where(squirrel.Eq{"a.platform_ad_id": platformAdID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	ad, err := scanAdRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

// ListNeedingCreative busca um lote limitado de anúncios que ainda precisam de
// resolução de criativo, segundo o filtro declarativo informado
func (r *adRepository) ListNeedingCreative(filter domain.CreativeBackfillFilter, limit uint64) ([]*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(adsColumns).
		From(adsTable).
		OrderBy("a.updated_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	conditions := squirrel.Or{}
	if filter.MissingCreativeURL {
		conditions = append(conditions, squirrel.Eq{"a.creative_url": nil})
	}
	if filter.BadCreativeURL {
		conditions = append(conditions, squirrel.Like{"a.creative_url": "%" + domain.ProfilePictureMarker + "%"})
	}
	if len(conditions) > 0 {
		queryBuilder = queryBuilder.Where(conditions)
	}

	if filter.AccountID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.account_id": filter.AccountID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listAds(query, args)
}

// ListForStorageMigration busca anúncios com criativo resolvido mas ainda
// dependente da URL temporária do CDN de terceiros
func (r *adRepository) ListForStorageMigration(limit uint64) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		Where(squirrel.NotEq{"a.creative_url": nil}).
		Where(squirrel.Eq{"a.stored_creative_url": nil}).
		OrderBy("a.updated_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listAds(query, args)
}

func (r *adRepository) listAds(query string, args []interface{}) ([]*domain.Ad, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAdRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncios: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

// UpdateCreative escreve um patch parcial: apenas campos presentes são
// atualizados e updated_at é sempre renovado
func (r *adRepository) UpdateCreative(adID string, patch domain.CreativeUpdate) error {
	if patch.IsEmpty() {
		return nil
	}

	queryBuilder := squirrel.
		Update("ads").
		Where(squirrel.Eq{"id": adID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if patch.CreativeURL != nil {
		queryBuilder = queryBuilder.Set("creative_url", *patch.CreativeURL)
	}
	if patch.CreativeThumbnailURL != nil {
		queryBuilder = queryBuilder.Set("creative_thumbnail_url", *patch.CreativeThumbnailURL)
	}
	if patch.CreativeVideoURL != nil {
		queryBuilder = queryBuilder.Set("creative_video_url", *patch.CreativeVideoURL)
	}
	if patch.CreativeHeadline != nil {
		queryBuilder = queryBuilder.Set("creative_headline", *patch.CreativeHeadline)
	}
	if patch.CreativeBody != nil {
		queryBuilder = queryBuilder.Set("creative_body", *patch.CreativeBody)
	}
	if patch.CreativeCTA != nil {
		queryBuilder = queryBuilder.Set("creative_cta", *patch.CreativeCTA)
	}
	if patch.ObjectStoryID != nil {
		queryBuilder = queryBuilder.Set("object_story_id", *patch.ObjectStoryID)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar criativo do anúncio %s: %w", adID, err)
	}

	return nil
}

// UpdateStoredCreative grava a URL permanente do criativo. Quando a URL de
// origem foi renovada durante a migração (autocorreção), creative_url também é
// reescrita com o valor fresco.
func (r *adRepository) UpdateStoredCreative(adID string, storedURL string, freshCreativeURL *string) error {
	queryBuilder := squirrel.
		Update("ads").
		Where(squirrel.Eq{"id": adID}).
		Set("stored_creative_url", storedURL).
		Set("stored_thumbnail_url", storedURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if freshCreativeURL != nil {
		queryBuilder = queryBuilder.Set("creative_url", *freshCreativeURL)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar URL permanente do anúncio %s: %w", adID, err)
	}

	return nil
}

func scanAdRow(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}

	if err := row.Scan(
		&ad.ID,
		&ad.AccountID,
		&ad.PlatformAdID,
		&ad.CreativeURL,
		&ad.CreativeThumbnailURL,
		&ad.CreativeVideoURL,
		&ad.StoredCreativeURL,
		&ad.StoredThumbnailURL,
		&ad.CreativeHeadline,
		&ad.CreativeBody,
		&ad.CreativeCTA,
		&ad.ObjectStoryID,
		&ad.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return ad, nil
}

func scanAdRows(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}

	if err := rows.Scan(
		&ad.ID,
		&ad.AccountID,
		&ad.PlatformAdID,
		&ad.CreativeURL,
		&ad.CreativeThumbnailURL,
		&ad.CreativeVideoURL,
		&ad.StoredCreativeURL,
		&ad.StoredThumbnailURL,
		&ad.CreativeHeadline,
		&ad.CreativeBody,
		&ad.CreativeCTA,
		&ad.ObjectStoryID,
		&ad.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return ad, nil
}
