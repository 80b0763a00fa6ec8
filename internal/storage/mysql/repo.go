package mysql

import (
	"context"
	"database/sql"

	"stay_resolver/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *Repo) Put(ctx context.Context, p domain.Property) error {
	var (
		chainCode, chainName, brandCode, brandName string
		chainID, brandID                           any
	)
	if p.Chain != nil {
		chainCode, chainID, chainName = p.Chain.Code, p.Chain.ID, p.Chain.Name
	}
	if p.Brand != nil {
		brandCode, brandID, brandName = p.Brand.Code, p.Brand.ID, p.Brand.Name
	}

	isExternal := false
	source := domain.SourceSeed
	var lon, lat any
	var rawPhone string
	if p.Provenance != nil {
		isExternal = p.Provenance.IsExternal
		if p.Provenance.Source != "" {
			source = p.Provenance.Source
		}
		if c := p.Provenance.Coordinates; c != nil {
			lon, lat = c.Longitude, c.Latitude
		}
		rawPhone = p.Provenance.RawPhone
	}

	_, err := r.db.ExecContext(ctx, upsertPropertySQL,
		p.Code,
		p.NumericID,
		p.Name,
		p.Address.Line1,
		p.Address.City,
		p.Address.Country,
		p.Address.PostalCode,
		nullStr(p.Phone),
		nullStr(chainCode),
		chainID,
		nullStr(chainName),
		nullStr(brandCode),
		brandID,
		nullStr(brandName),
		isExternal,
		source,
		lon,
		lat,
		nullStr(rawPhone),
	)
	return err
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listAllSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Property, error) {
	row := r.db.QueryRowContext(ctx, getByCodeSQL, code)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanProperty(row scanner) (domain.Property, error) {
	var p domain.Property
	var phone, chainCode, chainName, brandCode, brandName sql.NullString
	var chainID, brandID sql.NullInt64
	var isExternal bool
	var source sql.NullString
	var lon, lat sql.NullFloat64
	var rawPhone sql.NullString

	if err := row.Scan(
		&p.Code,
		&p.NumericID,
		&p.Name,
		&p.Address.Line1,
		&p.Address.City,
		&p.Address.Country,
		&p.Address.PostalCode,
		&phone,
		&chainCode, &chainID, &chainName,
		&brandCode, &brandID, &brandName,
		&isExternal,
		&source,
		&lon, &lat,
		&rawPhone,
	); err != nil {
		return domain.Property{}, err
	}

	p.Phone = phone.String
	if chainCode.Valid || chainID.Valid {
		p.Chain = &domain.ChainInfo{Code: chainCode.String, ID: chainID.Int64, Name: chainName.String}
	}
	if brandCode.Valid || brandID.Valid {
		p.Brand = &domain.ChainInfo{Code: brandCode.String, ID: brandID.Int64, Name: brandName.String}
	}

	prov := &domain.Provenance{
		IsExternal: isExternal,
		Source:     source.String,
		RawPhone:   rawPhone.String,
	}
	if prov.Source == "" {
		prov.Source = domain.SourceSeed
	}
	if lon.Valid && lat.Valid {
		prov.Coordinates = &domain.Coordinates{Longitude: lon.Float64, Latitude: lat.Float64}
	}
	p.Provenance = prov

	return p, nil
}
