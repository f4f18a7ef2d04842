package mysql

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listRoomsSQL = `
SELECT id, hotel_id, room_number, category, status
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`

const listOpenIssuesSQL = `
SELECT i.id, i.room_id, i.status, i.category, i.reported_at
FROM room_issues i
JOIN rooms r ON r.id = i.room_id
WHERE r.hotel_id = ? AND i.status IN ('open', 'in_progress')
ORDER BY i.reported_at DESC, i.id DESC
`

const listRevenueEntriesSQL = `
SELECT id, hotel_id, entry_type, profit_center, room_category, package_type, season, net_amount, occurred_at
FROM financial_entries
WHERE hotel_id = ? AND entry_type = 'revenue' AND occurred_at BETWEEN ? AND ?
ORDER BY occurred_at, id
`

const listAllRevenueEntriesSQL = `
SELECT id, hotel_id, entry_type, profit_center, room_category, package_type, season, net_amount, occurred_at
FROM financial_entries
WHERE hotel_id = ? AND entry_type = 'revenue'
ORDER BY occurred_at, id
`

const listReservationsSinceSQL = `
SELECT id, hotel_id, room_id, guest_id, status, source, check_in, check_out, total_amount, season
FROM reservations
WHERE hotel_id = ? AND check_in >= ?
ORDER BY check_in, id
`

// One row per competitor joined with its single most recent rate
// snapshot (order-by-recency-take-one).
const listCompetitorsSQL = `
SELECT c.id, c.hotel_id, c.name, c.rating, c.distance_km, r.rate, r.rate_date
FROM competitor_hotels c
LEFT JOIN competitor_rates r
  ON r.competitor_id = c.id
 AND r.rate_date = (SELECT MAX(rate_date) FROM competitor_rates WHERE competitor_id = c.id)
WHERE c.hotel_id = ?
ORDER BY c.id
`

const listCompetitorIDsSQL = `
SELECT id FROM competitor_hotels WHERE hotel_id = ? ORDER BY id
`

const latestWeatherSQL = `
SELECT id, hotel_id, observed_on, temp_c, precip_prob, summary
FROM weather_snapshots
WHERE hotel_id = ?
ORDER BY observed_on DESC, id DESC
LIMIT 1
`

const listChannelStatusesSQL = `
SELECT channel, status, last_sync_at
FROM channel_sync_status
WHERE hotel_id = ?
ORDER BY channel
`

const getHotelSQL = `
SELECT id, name, rating FROM hotels WHERE id = ?
`

// -----------------------------------------------------------------------------
// WRITE QUERIES
// -----------------------------------------------------------------------------

// Idempotent ensure/create: relies on the unique key on hotels.name.
// LAST_INSERT_ID(id) makes LastInsertId return the existing row's id on
// the duplicate path.
const ensureHotelSQL = `
INSERT INTO hotels (name)
VALUES (?)
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
`

const upsertRateSnapshotSQL = `
INSERT INTO competitor_rates (competitor_id, rate_date, rate)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  rate       = VALUES(rate),
  updated_at = CURRENT_TIMESTAMP
`

const upsertWeatherSQL = `
INSERT INTO weather_snapshots (hotel_id, observed_on, temp_c, precip_prob, summary)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  temp_c      = VALUES(temp_c),
  precip_prob = VALUES(precip_prob),
  summary     = VALUES(summary),
  updated_at  = CURRENT_TIMESTAMP
`
