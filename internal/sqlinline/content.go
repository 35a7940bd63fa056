package sqlinline

const QSelectContentBySection = `--sql 335a951f-0fd3-404d-969d-1a209e8f64b5
select id, section, body, created_at, updated_at
from contents
where section = $1::text;
`

const QUpsertContent = `--sql b0fb57ab-02de-4006-9616-51cadc8adbe1
insert into contents(section, body, created_at, updated_at)
values ($1::text, $2::text, now(), now())
on conflict (section) do update set body = excluded.body, updated_at = now()
returning id, section, body, created_at, updated_at;
`
