package mysql

// Note: `text` is reserved; keep it quoted everywhere.
const insertReviewSQL = "INSERT INTO reviews (`text`, sentiment, created_at) VALUES (?, ?, ?)"

const listReviewsSQL = "SELECT id, `text`, sentiment, created_at FROM reviews ORDER BY id ASC"

const listReviewsBySentimentSQL = "SELECT id, `text`, sentiment, created_at FROM reviews WHERE sentiment = ? ORDER BY id ASC"
