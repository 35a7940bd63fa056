package sqlinline

const QListRSVPs = `--sql 7caf4aee-ecee-48dd-a682-ebed8d217560
select id, name, companions, email, phone, message, confirmed, country, created_at
from rsvps
order by created_at desc;
`

const QInsertRSVP = `--sql fde9875e-4f94-47d8-91f4-41205084b602
insert into rsvps(name, companions, email, phone, message, confirmed, country, created_at)
values ($1::text, $2::int, $3::text, $4::text, $5::text, $6::boolean, $7::text, now())
returning id, created_at;
`

const QDeleteRSVP = `--sql f018507c-3aa0-4056-81b6-3f16f6837be5
delete from rsvps where id = $1::bigint;
`
