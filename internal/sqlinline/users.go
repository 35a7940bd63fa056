package sqlinline

const QSelectUserByEmail = `--sql 3857ac35-3232-4070-ae39-4277398d7591
select id, name, email, password_hash, created_at
from users
where email = $1::text;
`

const QInsertUser = `--sql bffa172a-699c-4ed8-9c13-f4e49386049a
insert into users(name, email, password_hash, created_at)
values ($1::text, $2::text, $3::text, now())
on conflict (email) do nothing
returning id, created_at;
`
