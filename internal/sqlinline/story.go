package sqlinline

const QListStoryEvents = `--sql e577e9ef-9e97-4e18-ac3d-86fe60b655c7
select id, event_date, title, body, image, sort_order, created_at
from story_events
order by sort_order asc, created_at asc;
`

const QSelectStoryEventByID = `--sql 70a7cfec-cbfa-4924-974f-b0383e86b8e9
select id, event_date, title, body, image, sort_order, created_at
from story_events
where id = $1::bigint;
`

const QInsertStoryEvent = `--sql dbfaebec-ead0-4f0c-b33c-6597a0df07f4
insert into story_events(event_date, title, body, image, sort_order, created_at)
values ($1::text, $2::text, $3::text, $4::text, $5::int, now())
returning id, created_at;
`

const QUpdateStoryEvent = `--sql 3a29f474-2282-4034-acc5-bb388fd0dfb6
update story_events
set event_date = $2::text, title = $3::text, body = $4::text, image = $5::text, sort_order = $6::int
where id = $1::bigint;
`

const QDeleteStoryEvent = `--sql 363377af-dc8a-46f9-adba-cdd9add2c802
delete from story_events where id = $1::bigint;
`
