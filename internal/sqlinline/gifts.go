package sqlinline

const QListGifts = `--sql ca377c3e-5258-4767-9dbf-7ccd574952c0
select id, name, description, price_cents, image, stock, created_at, updated_at
from gifts
order by name asc;
`

const QSelectGiftByID = `--sql 90291050-b788-4e81-acb7-cfa82cbdf64d
select id, name, description, price_cents, image, stock, created_at, updated_at
from gifts
where id = $1::bigint;
`

const QInsertGift = `--sql 82d4683a-ed77-450e-a941-b37a08d9db15
insert into gifts(name, description, price_cents, image, stock, created_at, updated_at)
values ($1::text, $2::text, $3::bigint, $4::text, $5::int, now(), now())
returning id, created_at, updated_at;
`

const QUpdateGift = `--sql 14c5e121-fe5f-491e-a034-ebd3b675b285
update gifts
set name = $2::text, description = $3::text, price_cents = $4::bigint,
    image = $5::text, stock = $6::int, updated_at = now()
where id = $1::bigint;
`

const QDeleteGift = `--sql 1401def9-507c-4405-9143-3f362a65d79b
delete from gifts where id = $1::bigint;
`

const QDecrementGiftStock = `--sql 5f146a40-464c-4d86-a97f-307772318314
update gifts
set stock = greatest(stock - 1, 0), updated_at = now()
where id = $1::bigint;
`
