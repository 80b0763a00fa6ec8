package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (code, numeric_id, name, address_line1, city, country, postal_code, phone,
   chain_code, chain_id, chain_name, brand_code, brand_id, brand_name,
   is_external, source, lon, lat, raw_phone)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  numeric_id    = VALUES(numeric_id),
  name          = VALUES(name),
  address_line1 = VALUES(address_line1),
  city          = VALUES(city),
  country       = VALUES(country),
  postal_code   = VALUES(postal_code),
  phone         = VALUES(phone),
  chain_code    = VALUES(chain_code),
  chain_id      = VALUES(chain_id),
  chain_name    = VALUES(chain_name),
  brand_code    = VALUES(brand_code),
  brand_id      = VALUES(brand_id),
  brand_name    = VALUES(brand_name),
  is_external   = VALUES(is_external),
  source        = VALUES(source),
  lon           = VALUES(lon),
  lat           = VALUES(lat),
  raw_phone     = VALUES(raw_phone),
  updated_at    = CURRENT_TIMESTAMP
`

const selectColumns = `
  code, numeric_id, name, address_line1, city, country, postal_code, phone,
  chain_code, chain_id, chain_name, brand_code, brand_id, brand_name,
  is_external, source, lon, lat, raw_phone
`

const listAllSQL = `SELECT ` + selectColumns + ` FROM properties ORDER BY numeric_id, code`

const getByCodeSQL = `SELECT ` + selectColumns + ` FROM properties WHERE code = ?`
